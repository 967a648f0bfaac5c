package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/http/handlers"
	"github.com/spec-kit/bistro-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Menu     *handlers.MenuHandler
	Carts    *handlers.CartsHandler
	Payments *handlers.PaymentsHandler
	Auth     *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Public routes are registration, the
// login exchange, the catalog reads and health probes; everything else
// requires a valid token, and user/menu mutations additionally require
// the admin role resolved from the store.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Users.Login)
	app.Post("/users", cfg.Users.Register)

	app.Get("/users", cfg.Auth.RequireAuth, cfg.Users.List)
	app.Get("/users/admin/:email", cfg.Auth.RequireAuth, cfg.Users.IsAdmin)
	app.Patch("/users/admin/:id", cfg.Auth.RequireAuth, cfg.Auth.RequireAdmin, cfg.Users.Promote)
	app.Delete("/users/:id", cfg.Auth.RequireAuth, cfg.Auth.RequireAdmin, cfg.Users.Delete)

	app.Get("/menu", cfg.Menu.List)
	app.Get("/menu/:id", cfg.Menu.Get)
	app.Post("/menu", cfg.Auth.RequireAuth, cfg.Auth.RequireAdmin, cfg.Menu.Create)
	app.Patch("/menu/:id", cfg.Auth.RequireAuth, cfg.Auth.RequireAdmin, cfg.Menu.Update)
	app.Delete("/menu/:id", cfg.Auth.RequireAuth, cfg.Auth.RequireAdmin, cfg.Menu.Delete)

	app.Get("/reviews", cfg.Menu.Reviews)

	app.Get("/carts", cfg.Auth.RequireAuth, cfg.Carts.List)
	app.Post("/carts", cfg.Auth.RequireAuth, cfg.Carts.Add)
	app.Delete("/carts/:id", cfg.Auth.RequireAuth, cfg.Carts.Remove)

	app.Post("/create-payment-intent", cfg.Auth.RequireAuth, cfg.Payments.CreateIntent)
	app.Get("/payments/:email", cfg.Auth.RequireAuth, cfg.Payments.History)
	app.Post("/payments", cfg.Auth.RequireAuth, cfg.Payments.Settle)
}
