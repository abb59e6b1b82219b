package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims carries the identity embedded in an access token.
//
// UserID is serialized as a string so JavaScript clients do not lose
// precision on 64-bit identifiers.
type Claims struct {
	UserID     int64  `json:"user_id,string"`
	UserEmail  string `json:"user_email,omitempty"`
	UserMobile string `json:"user_mobile,omitempty"`
	jwt.RegisteredClaims
}

// JWT issues and verifies signed access tokens.
type JWT interface {
	Generate(userID int64, email, mobile string) (string, error)
	Verify(token string) (*Claims, error)
}
