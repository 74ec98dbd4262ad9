package middlewares

import (
	"log"
	"strconv"

	"classroom_backend/internals/configs"
	"classroom_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares installs the global chain; order matters: recovery must
// wrap everything, the request id must exist before the access log.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setting up middlewares...")
	app.Use(RecoveryMiddleware())
	app.Use(RequestID())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())

	max, err := strconv.Atoi(configs.GetEnv("RATE_LIMIT_PER_MINUTE", "100"))
	if err != nil || max <= 0 {
		log.Printf("[WARN] invalid RATE_LIMIT_PER_MINUTE, using 100")
		max = 100
	}
	app.Use(GlobalRateLimiter(max))
}
