package handlers

import (
	"errors"
	"html"

	"github.com/gofiber/fiber/v3"

	"schoolwidget/internal/config"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div id="output" class="output error">` + html.EscapeString(message) + `</div>`,
	)
}

// ErrorHandler renders errors as the error page, or as an output fragment for htmx requests.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Erro interno. Tente novamente."

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		if c.Get("HX-Request") == "true" {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return htmxError(c, message)
		}

		return c.Status(code).Render("error", MergeBranding(fiber.Map{
			"Title":   "Erro",
			"Message": message,
		}, cfg))
	}
}

// RateLimitMessage is shown when a client exceeds the request limit.
const RateLimitMessage = "Muitas requisições. Tente novamente em instantes."

// LimitReached answers throttled requests: htmx gets the output fragment,
// everything else the JSON error envelope with 429.
func LimitReached(c fiber.Ctx) error {
	if c.Get("HX-Request") == "true" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return htmxError(c, RateLimitMessage)
	}
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"status": "error",
		"error":  RateLimitMessage,
	})
}
