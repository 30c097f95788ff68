package models

import "github.com/golang-jwt/jwt/v5"

// Claims are the JWT fields issued by the user service.
// The actor username is carried in Username, or in the standard Subject for older tokens.
type Claims struct {
	Username             string   `json:"username,omitempty"`
	Roles                []string `json:"roles,omitempty"`
	jwt.RegisteredClaims          // Issuer, Subject, Audience, ExpiresAt, NotBefore, IssuedAt, ID (JTI)
}

// Actor returns the username the token was issued for.
func (c *Claims) Actor() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}
