package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by a session token. The registered ID
// (jti) keys the logout denylist.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}
