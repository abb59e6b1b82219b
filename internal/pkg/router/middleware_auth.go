package router

import (
	"net/http"
	"strings"

	"github.com/wicaksn/otpgate/internal/pkg/goerror"
	"github.com/wicaksn/otpgate/internal/pkg/jwt"
)

// authenticate extracts and verifies the bearer token, returning its claims.
func authenticate(r *http.Request, verifier jwt.JWT) (*jwt.Claims, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, goerror.NewBusiness("Missing or malformed authorization header", goerror.CodeUnauthorized)
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		return nil, goerror.NewBusiness("Invalid or expired token", goerror.CodeUnauthorized)
	}

	return claims, nil
}
