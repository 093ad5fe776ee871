package handler

import (
	"context"
	"time"

	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck is one dependency probe. An optional dependency being down is
// reported but does not fail the check.
type HealthCheck struct {
	Name     string
	Pinger   Pinger
	Optional bool
}

type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status, msg := fiber.StatusOK, response.MessageOK
	deps := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		if chk.Pinger == nil {
			continue
		}
		if err := chk.Pinger.Ping(ctx); err != nil {
			deps[chk.Name] = "down"
			if !chk.Optional {
				status, msg = fiber.StatusServiceUnavailable, "unavailable"
			}
			continue
		}
		deps[chk.Name] = "up"
	}

	return response.Success(c, status, msg, deps)
}
