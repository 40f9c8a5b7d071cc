package handlers

import (
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"schoolwidget/internal/config"
	"schoolwidget/internal/middleware"
	"schoolwidget/internal/widget"
)

// WidgetHandler serves the widget page and its actions.
type WidgetHandler struct {
	widget *widget.Widget
	cfg    *config.Config
}

// NewWidgetHandler creates a new widget handler.
func NewWidgetHandler(w *widget.Widget, cfg *config.Config) *WidgetHandler {
	return &WidgetHandler{widget: w, cfg: cfg}
}

// Index renders the widget page with the greeting.
func (h *WidgetHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.data(widget.DefaultForm(), widget.Greeting))
}

// Run executes the selected mode. htmx requests get the output fragment only.
func (h *WidgetHandler) Run(c fiber.Ctx) error {
	form := middleware.FormFromContext(c)

	text, ok := h.widget.Run(form)
	if !ok {
		slog.Debug("ignoring run for unbound mode", "mode", form.Mode)
		if middleware.IsHTMX(c) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Render("index", h.data(form, widget.Greeting))
	}

	if middleware.IsHTMX(c) {
		return c.Render("partials/output", h.data(form, text), "")
	}
	return c.Render("index", h.data(form, text))
}

// Reset clears the controls and shows the confirmation message.
func (h *WidgetHandler) Reset(c fiber.Ctx) error {
	form, msg := h.widget.Reset()
	if middleware.IsHTMX(c) {
		return c.Render("partials/widget", h.data(form, msg), "")
	}
	return c.Render("index", h.data(form, msg))
}

// Chip copies the clicked example into the question field and selects chat mode.
// The output is left as it was.
func (h *WidgetHandler) Chip(c fiber.Ctx) error {
	form := h.widget.Chip(middleware.FormFromContext(c), c.FormValue("chip"))
	if middleware.IsHTMX(c) {
		return c.Render("partials/controls", h.data(form, ""), "")
	}
	return c.Render("index", h.data(form, widget.Greeting))
}

func (h *WidgetHandler) data(form widget.Form, output string) fiber.Map {
	return MergeBranding(fiber.Map{
		"Form":   form,
		"Modes":  widget.Modes,
		"Chips":  h.widget.Chips(),
		"Output": template.HTML(widget.RenderOutput(output)),
	}, h.cfg)
}
