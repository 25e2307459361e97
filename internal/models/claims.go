package models

import "github.com/golang-jwt/jwt/v5"

// AuthClaims are the claims carried by the hosted auth provider's bearer
// tokens. The subject is the provider's user id, which doubles as the lead id.
type AuthClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the auth provider's user id for this token.
func (c *AuthClaims) UserID() string {
	return c.Subject
}
