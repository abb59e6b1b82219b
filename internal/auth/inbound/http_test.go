package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wicaksn/otpgate/internal/auth/usecase"
	"github.com/wicaksn/otpgate/internal/pkg/goerror"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
	"github.com/wicaksn/otpgate/internal/pkg/router"
)

type stubConfig struct{}

func (stubConfig) GetString(string) string { return "" }
func (stubConfig) GetInt(string) int { return 0 }
func (stubConfig) GetBool(string) bool { return false }
func (stubConfig) GetDuration(string) time.Duration { return 0 }

type stubJWT struct {
	claims *jwt.Claims
	err    error
}

func (s *stubJWT) Generate(int64, string, string) (string, error) { return "token", nil }
func (s *stubJWT) Verify(string) (*jwt.Claims, error) { return s.claims, s.err }

// fakeUsecase returns canned results per operation.
type fakeUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
	sendOut     *usecase.SendOtpOutput
	sendErr     error
	verifyOut   *usecase.VerifyOtpOutput
	verifyErr   error
	profileOut  *usecase.ProfileOutput
	profileErr  error
}

func (f *fakeUsecase) Register(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.registerOut, f.registerErr
}

func (f *fakeUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUsecase) SendOtp(context.Context, usecase.SendOtpInput) (*usecase.SendOtpOutput, error) {
	return f.sendOut, f.sendErr
}

func (f *fakeUsecase) VerifyOtp(context.Context, usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error) {
	return f.verifyOut, f.verifyErr
}

func (f *fakeUsecase) Profile(context.Context, int64) (*usecase.ProfileOutput, error) {
	return f.profileOut, f.profileErr
}

func serveJSON(t *testing.T, uc authUsecase, verifier jwt.JWT, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(stubConfig{}, verifier)
	RegisterRoutes(rt, uc)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	return rec
}

func sampleUser() usecase.SanitizedUser {
	return usecase.SanitizedUser{
		ID:        42,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Mobile:    "+6281234567890",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRegisterEndpoint(t *testing.T) {
	uc := &fakeUsecase{registerOut: &usecase.RegisterOutput{User: sampleUser()}}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","mobile":"+6281234567890","password":"s3cretpass"}`, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var body struct {
		Success    bool   `json:"success"`
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
		Data       struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if !body.Success || body.Message != "User registration successful" {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if body.Data.ID != "42" {
		t.Errorf("Data.ID = %q, want string-encoded id", body.Data.ID)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must not leak the password field")
	}
}

func TestRegisterEndpointConflict(t *testing.T) {
	uc := &fakeUsecase{registerErr: goerror.NewBusinessFields("User already exists", goerror.CodeConflict,
		map[string]string{"email": "This email is already registered."})}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Jane","email":"jane@example.com","mobile":"+6281234567890","password":"s3cretpass"}`, "")

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var body struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Errors["email"] != "This email is already registered." {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestRegisterEndpointMalformedBody(t *testing.T) {
	uc := &fakeUsecase{}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/register", `{not json`, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	uc := &fakeUsecase{loginOut: &usecase.LoginOutput{User: sampleUser(), AccessToken: "jwt-token"}}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/login",
		`{"email":"jane@example.com","password":"s3cretpass"}`, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Login successful" || body.Data.AccessToken != "jwt-token" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestSendOtpEndpointIsFlat(t *testing.T) {
	uc := &fakeUsecase{sendOut: &usecase.SendOtpOutput{Mobile: "+6281234567890"}}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/send-otp",
		`{"mobile":"+6281234567890"}`, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, wrapped := body["success"]; wrapped {
		t.Fatalf("send-otp must not use the envelope: %v", body)
	}
	if body["message"] != "OTP sent successfully" || body["mobile"] != "+6281234567890" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestVerifyOtpEndpointIsFlat(t *testing.T) {
	uc := &fakeUsecase{verifyOut: &usecase.VerifyOtpOutput{UserID: 42}}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/verify-otp",
		`{"mobile":"+6281234567890","otp":"123456"}`, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "OTP verified successfully" || body["userId"] != "42" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestVerifyOtpEndpointInvalidCode(t *testing.T) {
	uc := &fakeUsecase{verifyErr: goerror.NewBusiness("Invalid or expired OTP.", goerror.CodeInvalidInput)}

	rec := serveJSON(t, uc, &stubJWT{}, http.MethodPost, "/api/v1/auth/verify-otp",
		`{"mobile":"+6281234567890","otp":"000000"}`, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Message != "Invalid or expired OTP." {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestProfileEndpointRequiresAuth(t *testing.T) {
	uc := &fakeUsecase{profileOut: &usecase.ProfileOutput{User: sampleUser()}}

	t.Run("without token", func(t *testing.T) {
		rec := serveJSON(t, uc, &stubJWT{claims: &jwt.Claims{UserID: 42}}, http.MethodGet, "/api/v1/auth/profile", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("with token", func(t *testing.T) {
		rec := serveJSON(t, uc, &stubJWT{claims: &jwt.Claims{UserID: 42}}, http.MethodGet, "/api/v1/auth/profile", "", "some-token")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var body struct {
			Data struct {
				Email string `json:"email"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Data.Email != "jane@example.com" {
			t.Errorf("Data.Email = %q", body.Data.Email)
		}
	})
}
