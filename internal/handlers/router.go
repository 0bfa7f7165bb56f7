package handlers

import (
	"github.com/arnavk03/staffdir/internal/middleware"
	"github.com/arnavk03/staffdir/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewRouter assembles the fiber app with all routes. Employee routes are
// gated by the bearer-token guard.
func NewRouter(auth *AuthHandler, employees *EmployeeHandler, tokens *services.TokenService) *fiber.App {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is up and running")
	})

	api := app.Group("/api")
	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)

	emp := api.Group("/employees", middleware.RequireAuth(tokens))
	emp.Post("/", employees.Create)
	emp.Get("/", employees.List)
	emp.Get("/:id", employees.Get)
	emp.Put("/:id", employees.Update)
	emp.Delete("/:id", employees.Delete)

	return app
}
