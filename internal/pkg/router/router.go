package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/wicaksn/otpgate/internal/pkg/config"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
)

// Handler is the application-level endpoint signature. The returned value is
// serialized by the response codec; errors are mapped to the error envelope.
type Handler func(r *Request) (any, error)

// Router registers endpoints on httprouter and applies the shared middleware
// chain to every request.
type Router struct {
	mux *httprouter.Router
	jwt jwt.JWT
	cfg config.Config
}

// New creates a Router. The token verifier is used by auth-protected
// endpoints.
func New(cfg config.Config, verifier jwt.JWT) *Router {
	mux := httprouter.New()
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Resource not found", nil)
	})
	mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})
	return &Router{mux: mux, jwt: verifier, cfg: cfg}
}

// Option tweaks how a single endpoint is served.
type Option func(*endpointOptions)

type endpointOptions struct {
	authenticated bool
}

// WithAuth requires a valid bearer token; the parsed claims become available
// through Request.Claims.
func WithAuth() Option {
	return func(o *endpointOptions) {
		o.authenticated = true
	}
}

// Endpoint registers a handler for the method and path.
func (rt *Router) Endpoint(method, path string, h Handler, opts ...Option) {
	var o endpointOptions
	for _, opt := range opts {
		opt(&o)
	}

	rt.mux.Handle(method, path, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		req := &Request{raw: r, params: ps}

		if o.authenticated {
			claims, err := authenticate(r, rt.jwt)
			if err != nil {
				encodeError(w, err)
				return
			}
			req.claims = claims
		}

		resp, err := h(req)
		if err != nil {
			encodeError(w, err)
			return
		}

		encodeOK(w, resp)
	})
}

// ServeHTTP runs the middleware chain around the underlying mux.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var handler http.Handler = rt.mux
	handler = observabilityMiddleware(handler)
	handler = clientIPMiddleware(handler)
	handler = correlationMiddleware(handler)
	handler = maintenanceMiddleware(rt.cfg, handler)
	handler = recoverMiddleware(handler)

	handler.ServeHTTP(w, r)
}
