// file: internals/route/index.go
package route

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== PRIVATE (USER) =====================
	// Teachers and up: grading views, grading mutations, lookups.
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", authMiddleware.AuthJWT(jwtOpts))

	// ===================== ADMIN =====================
	// Scale management, permission grants, publishing, master data.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthJWT(jwtOpts))

	log.Println("[INFO] Setting up AcademicRoutes...")
	routeDetails.AcademicRoutes(user, admin, db)

	log.Println("[INFO] Setting up GradingRoutes...")
	routeDetails.GradingRoutes(user, admin, db)

	log.Println("[INFO] Setting up ReportRoutes...")
	routeDetails.ReportRoutes(user, admin, db)
}
