package auth

import (
	jwt "github.com/golang-jwt/jwt/v5"
)

// Principal identifies an authenticated account at issuance time.
type Principal struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

// Claims is the payload embedded in issued tokens. The subject carries the
// account email; userId and isAdmin are custom claims. Claims are built once
// by the Issuer and treated as read-only afterwards: the token is the only
// source of truth for them until it expires.
type Claims struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Email returns the subject claim.
func (c *Claims) Email() string {
	return c.Subject
}

// Principal reconstructs the principal the claims were issued for.
func (c *Claims) Principal() Principal {
	return Principal{UserID: c.UserID, Email: c.Subject, IsAdmin: c.IsAdmin}
}
