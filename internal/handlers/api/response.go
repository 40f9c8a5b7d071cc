package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
)

const errInvalidBody = "invalid request body"

// envelope is the JSON shape of every API response.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonSuccess returns a 200 response with data wrapped in the envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope{Status: "ok", Data: data})
}

// jsonError returns an error envelope with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Status: "error", Error: message})
}

// decodeBody unmarshals the request body into v. On failure it has already
// written the 400 response and returns false.
func decodeBody(c fiber.Ctx, v any) (bool, error) {
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return false, jsonError(c, fiber.StatusBadRequest, errInvalidBody)
	}
	return true, nil
}
