package api

import (
	"github.com/gofiber/fiber/v3"

	"schoolwidget/internal/models"
	"schoolwidget/internal/widget"
)

// WidgetHandler exposes the widget modes as a JSON API.
type WidgetHandler struct {
	widget *widget.Widget
}

// NewWidgetHandler creates a new API widget handler.
func NewWidgetHandler(w *widget.Widget) *WidgetHandler {
	return &WidgetHandler{widget: w}
}

// Ask answers a chat question.
func (h *WidgetHandler) Ask(c fiber.Ctx) error {
	var body struct {
		Question string `json:"question"`
	}
	if ok, err := decodeBody(c, &body); !ok {
		return err
	}

	res := h.widget.Ask(body.Question)
	return jsonSuccess(c, models.AskResponse{
		Question: body.Question,
		Answer:   res.Text,
		Outcome:  res.Outcome,
		EntryID:  res.EntryID,
	})
}
