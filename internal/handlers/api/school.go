package api

import (
	"github.com/gofiber/fiber/v3"

	"schoolwidget/internal/models"
)

// Rules returns the school rules.
func (h *WidgetHandler) Rules(c fiber.Ctx) error {
	return jsonSuccess(c, models.RulesResponse{
		Text:  h.widget.RulesText(),
		Rules: h.widget.School().Rules,
	})
}

// Dates returns the important dates.
func (h *WidgetHandler) Dates(c fiber.Ctx) error {
	return jsonSuccess(c, models.DatesResponse{
		Text:  h.widget.DatesText(),
		Dates: h.widget.School().Dates,
	})
}
