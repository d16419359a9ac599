package handlers

import (
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Dashboard KPIs and charts
// @Description KPIs, daily or monthly revenue, menu group and service type breakdowns and the top 10 items
// @Tags Dashboard
// @Produce json
// @Param userId query string true "User ID"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param menuGroup query string false "Menu group filter"
// @Param period query string false "day or month"
// @Success 200 {object} services.Dashboard
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	filter, err := orderFilter(c)
	if err != nil {
		return badRequest(c, err)
	}

	period := services.PeriodDay
	if c.Query("period") == string(services.PeriodMonth) {
		period = services.PeriodMonth
	}

	dashboard, err := h.dashboardService.Build(c.UserContext(), services.DashboardQuery{
		UserID:    filter.UserID,
		Range:     filter.Range,
		MenuGroup: filter.MenuGroup,
		Period:    period,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(dashboard)
}
