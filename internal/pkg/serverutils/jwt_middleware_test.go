package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, userId string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(JwtSecret())
	require.NoError(t, err)
	return signed
}

func TestJwtSecretFallsBackWhenUnset(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Equal(t, []byte("default_secret"), JwtSecret())
}

func TestJwtSecretUsesEnvValue(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	assert.Equal(t, []byte("super-secret"), JwtSecret())
}

// Tokens issued by the auth service must validate in the middleware even
// when JWT_SECRET is unset, since both resolve the key through JwtSecret.
func TestJwtMiddlewareAcceptsIssuedTokenWithoutEnvSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("user_id").(string))
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-42"))

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestJwtMiddlewareRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/me", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestOptionalJwtMiddlewareResolvesUserWhenTokenPresent(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")

	app := fiber.New()
	app.Get("/scan", OptionalJwtMiddleware, func(ctx *fiber.Ctx) error {
		if userId, ok := ctx.Locals("user_id").(string); ok {
			return ctx.SendString(userId)
		}
		return ctx.SendString("anonymous")
	})

	req := httptest.NewRequest("GET", "/scan", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-42"))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	// Anonymous requests pass through untouched.
	res, err = app.Test(httptest.NewRequest("GET", "/scan", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}
