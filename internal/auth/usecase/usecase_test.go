package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/wicaksn/otpgate/internal/auth/entity"
	"github.com/wicaksn/otpgate/internal/pkg/goerror"
	"github.com/wicaksn/otpgate/internal/pkg/hash"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
	"github.com/wicaksn/otpgate/internal/pkg/validator"
	"github.com/wicaksn/otpgate/internal/shared/event"
)

// fakeRepo is an in-memory repoDB with the same uniqueness and consumption
// semantics as the real store.
type fakeRepo struct {
	mu    sync.Mutex
	users map[int64]entity.User
	otps  map[int64]entity.OtpRecord

	createUserErr error
	createOtpErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: map[int64]entity.User{},
		otps:  map[int64]entity.OtpRecord{},
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createUserErr != nil {
		return f.createUserErr
	}

	for _, u := range f.users {
		if u.Email == user.Email || u.Mobile == user.Mobile {
			return goerror.ErrConflict
		}
	}

	f.users[user.ID] = user

	return nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.users[id]; ok {
		return &u, nil
	}

	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) findUser(match func(entity.User) bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if match(u) {
			return &u, nil
		}
	}

	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.findUser(func(u entity.User) bool { return u.Email == email })
}

func (f *fakeRepo) GetUserByMobile(_ context.Context, mobile string) (*entity.User, error) {
	return f.findUser(func(u entity.User) bool { return u.Mobile == mobile })
}

func (f *fakeRepo) GetUserByEmailOrMobile(_ context.Context, identifier string) (*entity.User, error) {
	return f.findUser(func(u entity.User) bool { return u.Email == identifier || u.Mobile == identifier })
}

func (f *fakeRepo) CreateOtp(_ context.Context, rec entity.OtpRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createOtpErr != nil {
		return f.createOtpErr
	}

	f.otps[rec.ID] = rec

	return nil
}

func (f *fakeRepo) ConsumeOtp(_ context.Context, userID int64, code string, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var newest *entity.OtpRecord
	for id := range f.otps {
		rec := f.otps[id]
		if rec.UserID != userID || rec.Code != code {
			continue
		}
		if newest == nil || rec.CreatedAt.After(newest.CreatedAt) {
			newest = &rec
		}
	}

	if newest == nil || newest.Expired(now) {
		return false, nil
	}

	delete(f.otps, newest.ID)

	return true, nil
}

func (f *fakeRepo) DeleteExpiredOtps(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var removed int64
	for id, rec := range f.otps {
		if rec.ExpiresAt.Before(now) {
			delete(f.otps, id)
			removed++
		}
	}

	return removed, nil
}

func (f *fakeRepo) otpCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.otps)
}

// fakePublisher records published events and can fail on demand.
type fakePublisher struct {
	mu     sync.Mutex
	events []event.OtpIssuedMessage
	err    error
}

func (f *fakePublisher) PublishOtpIssued(_ context.Context, msg event.OtpIssuedMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, msg)

	return nil
}

// seqID hands out sequential ids.
type seqID struct {
	mu   sync.Mutex
	next int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++

	return s.next
}

// fixedOTP always returns the same code.
type fixedOTP struct {
	code string
}

func (f *fixedOTP) Generate() (string, error) {
	return f.code, nil
}

func mustValidator(fail func(format string, args ...any)) validator.Validator {
	v, err := validator.NewV10()
	if err != nil {
		fail("NewV10() error = %v", err)
	}

	return v
}

type testEnv struct {
	uc    *Usecase
	repo  *fakeRepo
	pub   *fakePublisher
	clock *adjustableClock
}

// adjustableClock lets tests move time forward between calls.
type adjustableClock struct {
	mu sync.Mutex
	at time.Time
}

func (a *adjustableClock) Now() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.at
}

func (a *adjustableClock) Advance(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.at = a.at.Add(d)
}

func newTestEnv(fail func(format string, args ...any)) *testEnv {
	repo := newFakeRepo()
	pub := &fakePublisher{}
	clk := &adjustableClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	uc := New(Dependency{
		DB:        repo,
		Publisher: pub,
		Validator: mustValidator(fail),
		Hash:      hash.NewBcrypt(4),
		JWT:       jwt.NewSymmetric("test-secret", "otpgate", time.Hour, clk),
		NumberID:  &seqID{},
		OTP:       &fixedOTP{code: "123456"},
		Clock:     clk,
	})

	return &testEnv{uc: uc, repo: repo, pub: pub, clock: clk}
}
