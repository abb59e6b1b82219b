package router

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
)

// Response lets a handler control the status code and message of the success
// envelope. Plain responses skip the envelope and write Data as the body.
type Response struct {
	Status  int
	Message string
	Data    any
	Plain   bool
}

type successEnvelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func encodeOK(w http.ResponseWriter, payload any) {
	resp, ok := payload.(*Response)
	if !ok {
		resp = &Response{Status: http.StatusOK, Message: "OK", Data: payload}
	}

	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}

	var body any
	if resp.Plain {
		body = resp.Data
	} else {
		body = successEnvelope{
			Success:    true,
			StatusCode: resp.Status,
			Message:    resp.Message,
			Data:       resp.Data,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response body", "error", err)
	}
}

func encodeError(w http.ResponseWriter, err error) {
	var ge *goerror.Error
	if !errors.As(err, &ge) {
		slog.Error("unclassified handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	writeError(w, ge.StatusCode(), ge.Msg(), ge.Fields())
}

func writeError(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := errorEnvelope{
		Success:    false,
		StatusCode: status,
		Message:    msg,
		Errors:     fields,
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode error body", "error", err)
	}
}
