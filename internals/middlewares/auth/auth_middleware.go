package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "userRole"
	LocalEmail  = "email"
)

// SupabaseJWT memverifikasi access token Supabase (HS256, JWT secret project).
// Claim exp diberi toleransi skew kecil.
func SupabaseJWT(secret string, log *zap.Logger) fiber.Handler {
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		}); err != nil {
			log.Debug("token parse error", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals(LocalUserID, userID.String())
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}
