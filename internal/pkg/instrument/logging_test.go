package instrument

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMaskHandlerRedactsConfiguredFields(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	handler := newMaskHandler(slog.NewJSONHandler(&buf, nil), "password, otp")
	logger := slog.New(handler)

	// Act
	logger.Info("login attempt", "password", "s3cretpass", "otp", "123456", "email", "jane@example.com")

	// Assert
	out := buf.String()
	if strings.Contains(out, "s3cretpass") || strings.Contains(out, "123456") {
		t.Errorf("secret leaked into log output: %s", out)
	}
	if !strings.Contains(out, `"password":"***"`) || !strings.Contains(out, `"otp":"***"`) {
		t.Errorf("masked keys missing from output: %s", out)
	}
	if !strings.Contains(out, "jane@example.com") {
		t.Errorf("unmasked field altered: %s", out)
	}
}

func TestMaskHandlerCoversPreboundAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := newMaskHandler(slog.NewJSONHandler(&buf, nil), "otp")

	logger := slog.New(handler).With("otp", "654321")
	logger.Info("dispatching code")

	if strings.Contains(buf.String(), "654321") {
		t.Errorf("prebound secret leaked: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"otp":"***"`) {
		t.Errorf("prebound key not masked: %s", buf.String())
	}
}

func TestMaskHandlerEmptyListIsPassthrough(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)

	if got := newMaskHandler(inner, ""); got != slog.Handler(inner) {
		t.Errorf("newMaskHandler with no fields = %T, want the inner handler", got)
	}
}

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&contextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := SetCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "hello")

	if !strings.Contains(buf.String(), `"correlation_id":"cid-123"`) {
		t.Errorf("correlation id missing: %s", buf.String())
	}
}
