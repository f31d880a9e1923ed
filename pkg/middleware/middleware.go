package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/sirupsen/logrus"
)

// FiberMiddleware installs the middleware every route shares.
func FiberMiddleware(a *fiber.App, allowOrigin string, log logrus.FieldLogger) {
	a.Use(
		cors.New(cors.Config{
			AllowOrigins:     allowOrigin,
			AllowCredentials: true,
		}),
		RequestLogger(log),
	)
}

func RequestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		entry := log.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start).String(),
		})
		if err != nil {
			entry.WithError(err).Warn("request failed")
		} else {
			entry.Debug("request")
		}
		return err
	}
}

// JWTProtected rejects requests without a valid bearer token. The parsed
// token is stored in Locals("user").
func JWTProtected(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: secret,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		},
	})
}
