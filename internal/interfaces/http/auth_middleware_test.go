package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/nyamoya/erp-backend/internal/interfaces/http"
	"github.com/nyamoya/erp-backend/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-not-for-production"
	testUserID    = "user-123"
	testEmail     = "ops@nyamoya.co.tz"
	testIssuer    = "nyamoya-erp-test"
	testExpMin    = 60
)

// buildTestApp registers a protected route behind AuthMiddleware plus, when
// roles are given, RequireRole. The handler echoes the principal so claims
// extraction is observable from the response.
func buildTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetUserEmail(c),
			"role":    apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, tokenForRole(t, "staff"))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, testUserID)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_TOKEN")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := buildTestApp()

	status, body := doRequest(t, app, "NotBearer xyz")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "INVALID_TOKEN")

	status, _ = doRequest(t, app, "Bearer ")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, "Bearer not.a.jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := buildTestApp()
	tok, err := jwt.Generate("some-other-secret", testUserID, testEmail, "staff", testIssuer, testExpMin)
	require.NoError(t, err)
	status, _ := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRequireRoleAdminOnly(t *testing.T) {
	app := buildTestApp("admin")

	status, _ := doRequest(t, app, tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, status)

	status, body := doRequest(t, app, tokenForRole(t, "staff"))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "FORBIDDEN")
}

func TestRequireRoleMultiple(t *testing.T) {
	app := buildTestApp("admin", "staff")
	status, _ := doRequest(t, app, tokenForRole(t, "staff"))
	assert.Equal(t, fiber.StatusOK, status)
}

func TestClaimsReachHandler(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, tokenForRole(t, "admin"))
	require.Equal(t, fiber.StatusOK, status)

	var got struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, testUserID, got.UserID)
	assert.Equal(t, testEmail, got.Email)
	assert.Equal(t, "admin", got.Role)
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := jwt.Generate(testJWTSecret, testUserID, testEmail, "staff", testIssuer, testExpMin)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(tok, ".")))

	userID, email, role, err := jwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
	assert.Equal(t, "staff", role)
}
