package handlers

import (
	"errors"
	"strings"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/gofiber/fiber/v2"
)

var errInvalidRange = errors.New("start and end must be YYYY-MM-DD")

// orderFilter reads userId, start, end and menuGroup from the query string.
func orderFilter(c *fiber.Ctx) (models.OrderFilter, error) {
	f := models.OrderFilter{
		UserID:    strings.TrimSpace(c.Query("userId")),
		MenuGroup: c.Query("menuGroup"),
		Limit:     c.QueryInt("limit", 0),
		Range: analytics.DateRange{
			Start: strings.TrimSpace(c.Query("start")),
			End:   strings.TrimSpace(c.Query("end")),
		},
	}
	if f.UserID == "" {
		return f, errors.New("userId is required")
	}
	for _, d := range []string{f.Range.Start, f.Range.End} {
		if d != "" && !models.Date(d).Valid() {
			return f, errInvalidRange
		}
	}
	return f, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
