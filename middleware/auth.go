package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/shared"
)

const (
	msgNoToken          = "Access denied. No token provided."
	msgInvalidToken     = "Invalid or expired token"
	msgForbidden        = "Insufficient permissions"
	msgAuthRequired     = "Authentication required"
	bearerPrefix        = "Bearer "
	authorizationHeader = "Authorization"
)

// TokenVerifier resolves a bearer token to the identity of a live user.
type TokenVerifier interface {
	VerifyToken(token string) (*dto.Identity, error)
}

// BearerToken pulls the token out of an Authorization header value.
func BearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// RequiredAuth rejects requests without a valid bearer token and stores the
// caller's identity in the request locals.
func RequiredAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(authorizationHeader)
		if header == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, msgNoToken, nil)
		}

		token, ok := BearerToken(header)
		if !ok {
			return shared.ResponseJSON(c, http.StatusUnauthorized, msgInvalidToken, nil)
		}

		identity, err := verifier.VerifyToken(token)
		if err != nil {
			if appErr, ok := shared.GetAppError(err); ok && appErr.StatusCode != http.StatusUnauthorized {
				return err
			}
			return shared.ResponseJSON(c, http.StatusUnauthorized, msgInvalidToken, nil)
		}

		c.Locals(shared.UserID, identity.UserID)
		c.Locals(shared.Identity, identity)
		return c.Next()
	}
}

// RequireRole must run after RequiredAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return shared.ResponseJSON(c, http.StatusUnauthorized, msgAuthRequired, nil)
		}

		for _, role := range roles {
			if identity.Role == role {
				return c.Next()
			}
		}
		return shared.ResponseJSON(c, http.StatusForbidden, msgForbidden, nil)
	}
}

func CurrentIdentity(c *fiber.Ctx) (*dto.Identity, bool) {
	identity, ok := c.Locals(shared.Identity).(*dto.Identity)
	return identity, ok && identity != nil
}

// CurrentUserID returns the authenticated user's id, or "".
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(shared.UserID).(string)
	return id
}
