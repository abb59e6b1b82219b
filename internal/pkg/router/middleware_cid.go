package router

import (
	"net/http"

	"github.com/wicaksn/otpgate/internal/pkg/instrument"
	"github.com/wicaksn/otpgate/internal/pkg/uid"
)

const headerCorrelationID = "X-Correlation-Id"

var cidGenerator uid.StringID = uid.NewUUID()

// correlationMiddleware ensures every request carries a correlation id, taken
// from the inbound header or generated, and echoes it on the response.
func correlationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid := r.Header.Get(headerCorrelationID)
		if cid == "" {
			cid = cidGenerator.Generate()
		}

		ctx := instrument.SetCorrelationID(r.Context(), cid)
		w.Header().Set(headerCorrelationID, cid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
