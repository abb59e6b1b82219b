package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wicaksn/otpgate/internal/pkg/clock"
)

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Symmetric signs tokens with HMAC-SHA512 using a shared secret.
type Symmetric struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clock.Clocker
}

// NewSymmetric creates an HS512 token issuer.
func NewSymmetric(secret, issuer string, ttl time.Duration, clk clock.Clocker) *Symmetric {
	return &Symmetric{secret: []byte(secret), issuer: issuer, ttl: ttl, clock: clk}
}

// Generate issues a signed token for the user identity.
func (s *Symmetric) Generate(userID int64, email, mobile string) (string, error) {
	now := s.clock.Now()

	claims := Claims{
		UserID:     userID,
		UserEmail:  email,
		UserMobile: mobile,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
}

// Verify parses and validates the token, returning its claims.
func (s *Symmetric) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
