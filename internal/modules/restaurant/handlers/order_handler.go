package handlers

import (
	"errors"
	"fmt"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/services"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService *services.OrderService
	seedService  *services.SeedService
}

func NewOrderHandler(orderService *services.OrderService, seedService *services.SeedService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		seedService:  seedService,
	}
}

// CreateOrder godoc
// @Summary Create an order
// @Description Record one order; order_date defaults to today
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := h.orderService.CreateOrder(c.UserContext(), &req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrMissingFields) || errors.Is(err, services.ErrInvalidAmount) || errors.Is(err, services.ErrInvalidDate) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// ListOrders godoc
// @Summary List orders
// @Description Newest first, capped at 5000 rows
// @Tags Orders
// @Produce json
// @Param userId query string true "User ID"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param menuGroup query string false "Menu group filter"
// @Param limit query int false "Max rows"
// @Success 200 {array} models.Order
// @Failure 400 {object} map[string]interface{}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	filter, err := orderFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	orders, err := h.orderService.ListOrders(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}

// SeedOrders godoc
// @Summary Insert demo orders
// @Description Adds 120 random orders over the last 30 days built from the menu items
// @Tags Orders
// @Produce json
// @Param userId query string true "User ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/orders/seed [post]
func (h *OrderHandler) SeedOrders(c *fiber.Ctx) error {
	n, err := h.seedService.SeedDemoOrders(c.UserContext(), c.Query("userId"))
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrNoMenuItems) || c.Query("userId") == "" {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"inserted": n,
	})
}

// ExportOrders godoc
// @Summary Export orders
// @Description Download the filtered orders, or the top items with report=top-items, as Excel or PDF
// @Tags Orders
// @Produce application/octet-stream
// @Param userId query string true "User ID"
// @Param format query string false "excel or pdf" default(excel)
// @Param report query string false "orders or top-items" default(orders)
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param menuGroup query string false "Menu group filter"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Router /api/orders/export [get]
func (h *OrderHandler) ExportOrders(c *fiber.Ctx) error {
	filter, err := orderFilter(c)
	if err != nil {
		return badRequest(c, err)
	}
	format, err := export.ParseFormat(c.Query("format", string(export.FormatExcel)))
	if err != nil {
		return badRequest(c, err)
	}

	var file *export.File
	name := "siparisler"
	if c.Query("report") == "top-items" {
		name = "en-cok-satanlar"
		file, err = h.orderService.ExportTopItems(c.UserContext(), filter, c.QueryInt("limit", 10), format)
	} else {
		file, err = h.orderService.ExportOrders(c.UserContext(), filter, format)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s%s"`, name, file.Extension))
	return c.Send(file.Content)
}
