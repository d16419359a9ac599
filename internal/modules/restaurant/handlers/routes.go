package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler of the service.
type Handlers struct {
	Health    *HealthHandler
	Chat      *ChatHandler
	Dashboard *DashboardHandler
	Order     *OrderHandler
	Menu      *MenuHandler
}

// Register mounts the routes. Nil handlers are skipped.
func (h *Handlers) Register(app fiber.Router) {
	if h.Health != nil {
		app.Get("/", h.Health.GetRoot)
		app.Get("/api/health", h.Health.GetHealth)
	}

	api := app.Group("/api")

	if h.Chat != nil {
		api.Post("/chat", h.Chat.Chat)
	}
	if h.Dashboard != nil {
		api.Get("/dashboard", h.Dashboard.GetDashboard)
	}
	if h.Order != nil {
		api.Get("/orders", h.Order.ListOrders)
		api.Post("/orders", h.Order.CreateOrder)
		api.Post("/orders/seed", h.Order.SeedOrders)
		api.Get("/orders/export", h.Order.ExportOrders)
	}
	if h.Menu != nil {
		api.Get("/menu-items", h.Menu.ListMenuItems)
		api.Post("/menu-items", h.Menu.CreateMenuItem)
	}
}
