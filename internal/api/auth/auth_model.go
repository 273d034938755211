package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("authentication required or invalid credentials")

// Token verification failures are distinct so callers can surface the
// precise reason a token was rejected.
var (
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenIssuerMismatch   = errors.New("token issuer mismatch")
	ErrTokenAudienceMismatch = errors.New("token audience mismatch")
)

// User is one entry in the static demo credential list. The password is
// plaintext for demo parity; the hashed store replaces the comparison for
// anything resembling real use.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the minted bearer token.
type LoginResponse struct {
	Token string `json:"Token"`
}

// Claims are the custom claims encoded into the access token. The subject
// registered claim carries the username.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
