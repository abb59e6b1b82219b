package inbound

import (
	"net/http"

	"github.com/wicaksn/otpgate/internal/auth/usecase"
	"github.com/wicaksn/otpgate/internal/pkg/router"
)

func (h *HTTP) register(r *router.Request) (any, error) {
	var in usecase.RegisterInput
	if err := r.Bind(&in); err != nil {
		return nil, err
	}

	out, err := h.uc.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return &router.Response{
		Status:  http.StatusCreated,
		Message: "User registration successful",
		Data:    toUserResponse(out.User),
	}, nil
}

func (h *HTTP) login(r *router.Request) (any, error) {
	var in usecase.LoginInput
	if err := r.Bind(&in); err != nil {
		return nil, err
	}

	out, err := h.uc.Login(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return &router.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: loginResponse{
			User:        toUserResponse(out.User),
			AccessToken: out.AccessToken,
		},
	}, nil
}

func (h *HTTP) sendOtp(r *router.Request) (any, error) {
	var in usecase.SendOtpInput
	if err := r.Bind(&in); err != nil {
		return nil, err
	}

	out, err := h.uc.SendOtp(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return &router.Response{
		Status: http.StatusOK,
		Plain:  true,
		Data: sendOtpResponse{
			Message: "OTP sent successfully",
			Mobile:  out.Mobile,
		},
	}, nil
}

func (h *HTTP) verifyOtp(r *router.Request) (any, error) {
	var in usecase.VerifyOtpInput
	if err := r.Bind(&in); err != nil {
		return nil, err
	}

	out, err := h.uc.VerifyOtp(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return &router.Response{
		Status: http.StatusOK,
		Plain:  true,
		Data: verifyOtpResponse{
			Message: "OTP verified successfully",
			UserID:  out.UserID,
		},
	}, nil
}

func (h *HTTP) profile(r *router.Request) (any, error) {
	out, err := h.uc.Profile(r.Context(), r.Claims().UserID)
	if err != nil {
		return nil, err
	}

	return &router.Response{
		Status:  http.StatusOK,
		Message: "OK",
		Data:    toUserResponse(out.User),
	}, nil
}
