package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/service"
)

// AuthHandler exposes login, logout and token validation endpoints.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName}
}

// Register handles POST /users.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username, email, password required")
	}

	user, token, exp, err := h.auth.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, token, exp)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.LoginResponse{UserID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin},
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Login handles POST /tokens. The token is set as an HTTP-only cookie; the
// body only confirms the account facts.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookie(c, token, exp)
	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{UserID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin},
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	})
}

// Logout handles POST /tokens/logout by expiring the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_ = h.auth.Logout(c.Context())
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.SendStatus(http.StatusOK)
}

// Validate handles GET /tokens/validate, returning the claims carried by the
// auth cookie.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	tokenStr := c.Cookies(h.cookieName)
	if tokenStr == "" {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	claims, err := h.auth.ValidateToken(tokenStr)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{UserID: claims.UserID, Email: claims.Email(), IsAdmin: claims.IsAdmin},
	})
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
