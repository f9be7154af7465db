package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// RateLimiter es el contrato mínimo que necesita el middleware. Lo implementa
// *redis.FixedWindowLimiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, int, error)
	Window() time.Duration
}

// RateLimitByIP limita las peticiones por IP del cliente.
//
// Comportamiento:
//   - 429 Too Many Requests → se agotaron los intentos de la ventana.
//   - Si Redis falla, la petición pasa y se registra el error.
func RateLimitByIP(limiter RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, remaining, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("rate limit no disponible")
			return c.Next()
		}
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(limiter.Window().Seconds())))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.Fail("RATE_LIMITED", "demasiados intentos, intente más tarde"))
		}
		return c.Next()
	}
}
