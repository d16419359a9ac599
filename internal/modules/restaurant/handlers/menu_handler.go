package handlers

import (
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/services"
	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	menuService *services.MenuService
}

func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type createMenuItemRequest struct {
	Name      string `json:"name"`
	MenuGroup string `json:"menu_group"`
}

// ListMenuItems godoc
// @Summary List menu items
// @Tags Menu
// @Produce json
// @Param menuGroup query string false "Only this group"
// @Success 200 {array} models.MenuItem
// @Router /api/menu-items [get]
func (h *MenuHandler) ListMenuItems(c *fiber.Ctx) error {
	items, err := h.menuService.ListItems(c.UserContext(), c.Query("menuGroup"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(items)
}

// CreateMenuItem godoc
// @Summary Add a menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param item body createMenuItemRequest true "Menu item"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} map[string]interface{}
// @Router /api/menu-items [post]
func (h *MenuHandler) CreateMenuItem(c *fiber.Ctx) error {
	var req createMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.menuService.CreateItem(c.UserContext(), req.Name, req.MenuGroup)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
