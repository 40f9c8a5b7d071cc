package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestProbeHandler(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		path       string
		wantStatus int
		wantBody   string
	}{
		{"liveness", nil, "/healthz", fiber.StatusOK, `"status":"ok"`},
		{"ready without database", nil, "/readyz", fiber.StatusOK, `"status":"ok"`},
		{"ready with database", fakePinger{}, "/readyz", fiber.StatusOK, `"status":"ok"`},
		{"database down", fakePinger{err: errors.New("refused")}, "/readyz", fiber.StatusServiceUnavailable, "database unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(tt.pinger)
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			body, _ := io.ReadAll(resp.Body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}
