package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]*dto.Identity

func (s stubVerifier) VerifyToken(token string) (*dto.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return nil, shared.NewUnauthorizedError(errors.New("bad token"), "Invalid or expired token")
}

func newApp(verifier TokenVerifier, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{RequiredAuth(verifier)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, _ := CurrentIdentity(c)
		return shared.ResponseOK(c, fiber.Map{"userId": CurrentUserID(c), "role": identity.Role})
	})
	app.Get("/", handlers...)
	return app
}

func call(t *testing.T, app *fiber.App, authHeader string) (int, shared.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out shared.Response
	require.NoError(t, sonic.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestRequiredAuth(t *testing.T) {
	verifier := stubVerifier{
		"good": {UserID: "u1", Role: "student"},
	}
	app := newApp(verifier)

	status, body := call(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Access denied. No token provided.", body.Message)

	status, body = call(t, app, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body.Message)

	status, body = call(t, app, "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body.Message)

	status, body = call(t, app, "bearer good")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
	assert.Equal(t, map[string]interface{}{"userId": "u1", "role": "student"}, body.Data)
}

func TestRequireRole(t *testing.T) {
	verifier := stubVerifier{
		"student": {UserID: "u1", Role: "student"},
		"teacher": {UserID: "u2", Role: "teacher"},
		"admin":   {UserID: "u3", Role: "admin"},
	}
	app := newApp(verifier, "teacher", "admin")

	status, body := call(t, app, "Bearer student")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Insufficient permissions", body.Message)

	status, _ = call(t, app, "Bearer teacher")
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, "Bearer admin")
	assert.Equal(t, http.StatusOK, status)
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/", RequireRole("admin"), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	for _, bad := range []string{"", "Bearer", "Bearer   ", "Basic abc", "Token abc"} {
		_, ok := BearerToken(bad)
		assert.False(t, ok, bad)
	}
}
