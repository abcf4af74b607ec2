package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/http/handlers"
	"github.com/spec-kit/record-shop/internal/auth"
)

// RouteConfig bundles every handler plus the auth middleware the router wires.
type RouteConfig struct {
	AuthMiddleware *auth.Middleware

	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Genres      *handlers.GenresHandler
	Records     *handlers.RecordsHandler
	Reviews     *handlers.ReviewsHandler
	Search      *handlers.SearchHandler
	Basket      *handlers.BasketHandler
	Checkout    *handlers.CheckoutHandler
	Subscribers *handlers.SubscribersHandler
	Purchases   *handlers.PurchasesHandler
	WS          *handlers.WSHandler
}

// RegisterRoutes mounts the API surface. Catalog reads, registration, login
// and the mailing list are public; everything basket- or order-shaped needs a
// token, and mutations of the catalog need the admin claim.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Check)

	api := app.Group("/api/v1")

	api.Post("/users", cfg.Auth.Register)
	api.Post("/tokens", cfg.Auth.Login)
	api.Post("/tokens/logout", cfg.Auth.Logout)
	api.Get("/tokens/validate", cfg.Auth.Validate)

	api.Get("/genres", cfg.Genres.List)
	api.Get("/genres/:id", cfg.Genres.Get)

	api.Get("/records", cfg.Records.List)
	api.Get("/records/:id", cfg.Records.Get)
	api.Get("/records/:id/reviews", cfg.Reviews.ListByRecord)
	api.Get("/search/records", cfg.Search.Records)

	api.Post("/subscribers", cfg.Subscribers.Subscribe)

	authed := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	authed.Post("/reviews", cfg.Reviews.Create)
	authed.Get("/reviews/:id", cfg.Reviews.Get)
	authed.Put("/reviews/:id", cfg.Reviews.Update)
	authed.Delete("/reviews/:id", cfg.Reviews.Delete)

	authed.Get("/basket", cfg.Basket.Get)
	authed.Delete("/basket", cfg.Basket.Clear)
	authed.Post("/basket/items", cfg.Basket.AddItem)
	authed.Put("/basket/items/:id", cfg.Basket.UpdateItem)
	authed.Delete("/basket/items/:id", cfg.Basket.RemoveItem)
	authed.Post("/basket/checkout", cfg.Checkout.Checkout)

	authed.Get("/purchases", cfg.Purchases.ListMine)

	admin := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())

	admin.Post("/records", cfg.Records.Create)
	admin.Put("/records/:id", cfg.Records.Update)
	admin.Delete("/records/:id", cfg.Records.Delete)
	admin.Patch("/records/:id/quantity", cfg.Records.SetQuantity)
	admin.Get("/search/orders", cfg.Search.Orders)
	admin.Get("/admin/dashboard", cfg.Purchases.DashboardStats)

	app.Get("/ws/active-users/count", cfg.WS.ActiveUsers)
	app.Use("/ws/:topic", cfg.WS.Upgrade)
	app.Get("/ws/:topic", cfg.WS.Stream())
}
