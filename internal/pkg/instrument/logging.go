package instrument

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const maskedValue = "***"

// SetupLogging installs the process-wide slog default. With telemetry
// enabled, records flow through the otelslog bridge to the OTLP exporter;
// otherwise they go to stdout as JSON. maskFields is a comma separated list
// of attribute keys whose values are redacted before the record is emitted.
func (i *Instrument) SetupLogging(serviceName string, debug bool, maskFields string) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if i.logger != nil {
		handler = otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(i.logger))
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(&contextHandler{Handler: newMaskHandler(handler, maskFields)}))
}

// contextHandler enriches every record with the correlation id carried in the
// request context.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cid := GetCorrelationID(ctx); cid != "" {
		r.AddAttrs(slog.String("correlation_id", cid))
	}

	return h.Handler.Handle(ctx, r)
}

// maskHandler redacts the values of configured attribute keys so secrets
// such as passwords and verification codes never reach a log sink.
type maskHandler struct {
	slog.Handler
	fields map[string]struct{}
}

// newMaskHandler wraps next with redaction for the comma separated keys.
// An empty list returns next unchanged.
func newMaskHandler(next slog.Handler, maskFields string) slog.Handler {
	fields := make(map[string]struct{})
	for _, key := range strings.Split(maskFields, ",") {
		if key = strings.TrimSpace(key); key != "" {
			fields[key] = struct{}{}
		}
	}

	if len(fields) == 0 {
		return next
	}

	return &maskHandler{Handler: next, fields: fields}
}

func (h *maskHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.mask(a))
		return true
	})

	return h.Handler.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = h.mask(a)
	}

	return &maskHandler{Handler: h.Handler.WithAttrs(out), fields: h.fields}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{Handler: h.Handler.WithGroup(name), fields: h.fields}
}

func (h *maskHandler) mask(a slog.Attr) slog.Attr {
	if _, ok := h.fields[a.Key]; ok {
		a.Value = slog.StringValue(maskedValue)
	}

	return a
}
