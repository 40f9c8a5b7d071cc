package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"schoolwidget/internal/models"
	"schoolwidget/internal/validation"
)

// Plan builds a study plan. hours and days may be numbers or strings;
// missing or invalid values fall back to the widget defaults.
func (h *WidgetHandler) Plan(c fiber.Ctx) error {
	var body struct {
		Difficulties string          `json:"difficulties"`
		Hours        json.RawMessage `json:"hours"`
		Days         json.RawMessage `json:"days"`
	}
	if ok, err := decodeBody(c, &body); !ok {
		return err
	}

	hours := validation.ParseHours(rawString(body.Hours))
	days := validation.ParseDeadline(rawString(body.Days))

	req, lines, text := h.widget.Plan(body.Difficulties, hours, days)
	if lines == nil {
		lines = []models.StudyPlanLine{}
	}
	return jsonSuccess(c, models.PlanResponse{
		Text:        text,
		HoursPerDay: req.HoursPerDay,
		Days:        req.Days,
		Lines:       lines,
	})
}

// rawString returns a JSON string's contents, or the literal text of any other value.
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var out string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
		return ""
	}
	return s
}
