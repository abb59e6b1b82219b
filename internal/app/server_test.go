package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMuxServesWelcomeAtRoot(t *testing.T) {
	// Arrange
	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "api", http.StatusNotFound)
	})
	mux := newMux(api)

	// Act
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Welcome to the otpgate API" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestMuxServesHealth(t *testing.T) {
	mux := newMux(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestMuxDelegatesOtherPathsToRouter(t *testing.T) {
	delegated := false
	api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delegated = true
		w.WriteHeader(http.StatusTeapot)
	})
	mux := newMux(api)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil))

	if !delegated {
		t.Fatal("request did not reach the api router")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want the router's status", rec.Code)
	}
}
