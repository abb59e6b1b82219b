package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
)

// Request wraps the incoming http request with route parameters and, for
// protected endpoints, the verified token claims.
type Request struct {
	raw    *http.Request
	params httprouter.Params
	claims *jwt.Claims
}

// Context returns the request context.
func (r *Request) Context() context.Context {
	return r.raw.Context()
}

// Bind decodes the JSON body into dst. Malformed or non-JSON bodies produce
// a validation-format error that maps to 400 on the wire.
func (r *Request) Bind(dst any) error {
	if err := json.NewDecoder(r.raw.Body).Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	return nil
}

// Param returns the named path parameter.
func (r *Request) Param(name string) string {
	return r.params.ByName(name)
}

// Query returns the named query parameter.
func (r *Request) Query(name string) string {
	return r.raw.URL.Query().Get(name)
}

// Claims returns the verified token claims, or nil on public endpoints.
func (r *Request) Claims() *jwt.Claims {
	return r.claims
}
