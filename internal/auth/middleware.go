package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/record-shop/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// Middleware validates tokens on protected routes. The claims are trusted as
// issued for the lifetime of the token: no database re-check of isAdmin or
// account state happens here.
type Middleware struct {
	validator  *Validator
	cookieName string
}

// NewMiddleware constructs middleware around the validator.
func NewMiddleware(validator *Validator, cookieName string) *Middleware {
	return &Middleware{validator: validator, cookieName: cookieName}
}

// Handle enforces authentication. The token is taken from the auth cookie or,
// failing that, from a bearer Authorization header. Malformed, forged and
// expired tokens all surface as the same unauthorized rejection.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	tokenStr := m.extractToken(c)
	if tokenStr == "" {
		return apperrors.NewUnauthorized("missing credentials")
	}

	claims, err := m.validator.Validate(tokenStr, time.Now())
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

func (m *Middleware) extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(m.cookieName); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// ClaimsFromContext retrieves the validated claims for the request.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
