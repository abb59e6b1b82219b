// Package inbound exposes the auth module over HTTP.
package inbound

import (
	"context"
	"net/http"

	"github.com/wicaksn/otpgate/internal/auth/usecase"
	"github.com/wicaksn/otpgate/internal/pkg/router"
)

// authUsecase is the operation surface the HTTP layer depends on.
type authUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	SendOtp(ctx context.Context, in usecase.SendOtpInput) (*usecase.SendOtpOutput, error)
	VerifyOtp(ctx context.Context, in usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error)
	Profile(ctx context.Context, userID int64) (*usecase.ProfileOutput, error)
}

// HTTP holds the endpoint handlers.
type HTTP struct {
	uc authUsecase
}

// RegisterRoutes mounts the auth endpoints on the router.
func RegisterRoutes(rt *router.Router, uc authUsecase) {
	h := &HTTP{uc: uc}

	rt.Endpoint(http.MethodPost, "/api/v1/auth/register", h.register)
	rt.Endpoint(http.MethodPost, "/api/v1/auth/login", h.login)
	rt.Endpoint(http.MethodPost, "/api/v1/auth/send-otp", h.sendOtp)
	rt.Endpoint(http.MethodPost, "/api/v1/auth/verify-otp", h.verifyOtp)
	rt.Endpoint(http.MethodGet, "/api/v1/auth/profile", h.profile, router.WithAuth())
}
