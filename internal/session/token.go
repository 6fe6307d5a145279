package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValid reports whether a bearer token is present and unexpired. The
// claims are read without signature verification; the backend owns validation
// and this check only decides whether to route to login. Tokens without an
// exp claim or that cannot be parsed are treated as valid and left for the
// backend to reject.
func TokenValid(token string) bool {
	if token == "" {
		return false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}
