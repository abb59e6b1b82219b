package inbound

import (
	"time"

	"github.com/wicaksn/otpgate/internal/auth/usecase"
)

// userResponse is the wire view of an account. The id is serialized as a
// string so JavaScript clients keep full 64-bit precision.
type userResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u usecase.SanitizedUser) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Mobile:    u.Mobile,
		CreatedAt: u.CreatedAt,
	}
}

type loginResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

// sendOtpResponse and verifyOtpResponse are flat bodies without the standard
// envelope.
type sendOtpResponse struct {
	Message string `json:"message"`
	Mobile  string `json:"mobile"`
}

type verifyOtpResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId,string"`
}
