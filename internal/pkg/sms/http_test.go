package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPProviderSend(t *testing.T) {
	// Arrange
	var got gatewayRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "test-key", "OTPGATE")

	// Act
	err := p.Send(context.Background(), Message{To: "+6281234567890", Body: "Your verification code is 123456"})

	// Assert
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if auth != "Bearer test-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.From != "OTPGATE" || got.To != "+6281234567890" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestHTTPProviderSendGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "test-key", "OTPGATE")

	if err := p.Send(context.Background(), Message{To: "+6281234567890", Body: "hi"}); err == nil {
		t.Fatal("Send() = nil, want error on 502")
	}
}
