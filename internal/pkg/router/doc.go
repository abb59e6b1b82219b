// Package router is a thin endpoint layer over httprouter. Handlers return
// (payload, error); the codec shapes success and error envelopes, and the
// middleware chain covers panic recovery, maintenance mode, correlation ids,
// client ip resolution and request telemetry.
package router
