package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(SupabaseJWT(testSecret, zap.NewNop()), OnlyRoles("", "authenticated"))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUserID).(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSupabaseJWT(t *testing.T) {
	app := newApp()
	sub := "0b6f6a8e-4c55-4a4e-9f3e-8b7a2d1c0e11"
	valid := jwt.MapClaims{"sub": sub, "role": "authenticated", "exp": time.Now().Add(time.Hour).Unix()}

	assert.Equal(t, fiber.StatusOK, call(t, app, sign(t, jwt.SigningMethodHS256, []byte(testSecret), valid)))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, sign(t, jwt.SigningMethodHS256, []byte("wrong"), valid)))

	expired := jwt.MapClaims{"sub": sub, "role": "authenticated", "exp": time.Now().Add(-time.Hour).Unix()}
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired)))

	noSub := jwt.MapClaims{"role": "authenticated", "exp": time.Now().Add(time.Hour).Unix()}
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, sign(t, jwt.SigningMethodHS256, []byte(testSecret), noSub)))

	anon := jwt.MapClaims{"sub": sub, "role": "anon", "exp": time.Now().Add(time.Hour).Unix()}
	assert.Equal(t, fiber.StatusForbidden, call(t, app, sign(t, jwt.SigningMethodHS256, []byte(testSecret), anon)))
}

func TestSupabaseJWTRejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"sub": "0b6f6a8e-4c55-4a4e-9f3e-8b7a2d1c0e11", "exp": time.Now().Add(time.Hour).Unix()}
	token := sign(t, jwt.SigningMethodHS512, []byte(testSecret), claims)

	assert.Equal(t, fiber.StatusUnauthorized, call(t, newApp(), token))
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	for header, want := range map[string]int{
		"bearer   abc":  fiber.StatusOK,
		`Bearer "abc"`:  fiber.StatusOK,
		"Basic abc":     fiber.StatusUnauthorized,
		"Bearer":        fiber.StatusUnauthorized,
		`Bearer ""`:     fiber.StatusUnauthorized,
	} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, header)
	}
}
