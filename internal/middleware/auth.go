package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrail/jobtrail-backend/internal/config"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
)

// JWTProtected rejects requests without a valid bearer token. The 401
// body is identical for every failure mode so callers cannot probe
// whether a token was expired, malformed, or signed for another user.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
