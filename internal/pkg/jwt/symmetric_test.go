package jwt

import (
	"testing"
	"time"

	"github.com/wicaksn/otpgate/internal/pkg/clock"
)

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	// Arrange
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j := NewSymmetric("test-secret", "otpgate", time.Hour, clock.NewFixed(now))

	// Act
	token, err := j.Generate(123456789, "jane@example.com", "+6281234567890")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := j.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	// Assert
	if claims.UserID != 123456789 {
		t.Errorf("UserID = %d, want 123456789", claims.UserID)
	}
	if claims.UserEmail != "jane@example.com" {
		t.Errorf("UserEmail = %q", claims.UserEmail)
	}
	if claims.UserMobile != "+6281234567890" {
		t.Errorf("UserMobile = %q", claims.UserMobile)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(time.Hour)) {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt.Time, now.Add(time.Hour))
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	// Arrange
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewSymmetric("test-secret", "otpgate", time.Minute, clock.NewFixed(issuedAt))

	token, err := issuer.Generate(1, "jane@example.com", "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Act: verify two minutes after issuance.
	verifier := NewSymmetric("test-secret", "otpgate", time.Minute, clock.NewFixed(issuedAt.Add(2*time.Minute)))
	_, err = verifier.Verify(token)

	// Assert
	if err == nil {
		t.Fatal("Verify() = nil, want expiry error")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Now().UTC()
	issuer := NewSymmetric("secret-a", "otpgate", time.Hour, clock.NewFixed(now))
	verifier := NewSymmetric("secret-b", "otpgate", time.Hour, clock.NewFixed(now))

	token, err := issuer.Generate(1, "jane@example.com", "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("Verify() = nil, want signature error")
	}
}
