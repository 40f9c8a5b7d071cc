package middleware

import (
	"github.com/gofiber/fiber/v3"

	"schoolwidget/internal/widget"
)

const (
	htmxLocal = "htmx"
	formLocal = "form"
)

// HTMX flags requests made by htmx so handlers can answer with a partial
// instead of the full page.
func HTMX(c fiber.Ctx) error {
	c.Vary("HX-Request")
	c.Locals(htmxLocal, c.Get("HX-Request") == "true")
	return c.Next()
}

// IsHTMX reports whether the HTMX middleware flagged the request.
func IsHTMX(c fiber.Ctx) bool {
	v, _ := c.Locals(htmxLocal).(bool)
	return v
}

// WidgetForm reads the widget controls from the request body.
// Missing controls are left empty; the widget applies its own defaults.
func WidgetForm(c fiber.Ctx) error {
	c.Locals(formLocal, ParseForm(c))
	return c.Next()
}

// ParseForm builds a widget.Form from the posted control values.
// An empty mode means chat; an unknown mode is kept as-is so the
// dispatcher can ignore it.
func ParseForm(c fiber.Ctx) widget.Form {
	raw := c.FormValue("mode")
	mode, ok := widget.ParseMode(raw)
	if !ok {
		mode = widget.Mode(raw)
	}
	return widget.Form{
		Mode:         mode,
		Question:     c.FormValue("question"),
		Difficulties: c.FormValue("difficulties"),
		Hours:        c.FormValue("hours"),
		Deadline:     c.FormValue("deadline"),
	}
}

// FormFromContext returns the form stored by WidgetForm, or the default form.
func FormFromContext(c fiber.Ctx) widget.Form {
	if f, ok := c.Locals(formLocal).(widget.Form); ok {
		return f
	}
	return widget.DefaultForm()
}
