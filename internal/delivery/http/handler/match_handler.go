package handler

import (
	"errors"
	"strconv"
	"strings"

	"skill-swap/internal/config"
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc           usecase.MatchingUsecase
	defaultLimit int
	maxLimit     int
}

func NewMatchHandler(uc usecase.MatchingUsecase, cfg config.MatchingConfig) *MatchHandler {
	return &MatchHandler{uc: uc, defaultLimit: cfg.DefaultLimit, maxLimit: cfg.MaxLimit}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/users")
	grp.Get("/:user_id/matches", h.GetMatches)
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	limit, err := parseLimit(c.Query("limit"), h.defaultLimit, h.maxLimit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	items, err := h.uc.FindMatches(c.Context(), userID, limit)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}

	out := dto.NewMatchResponses(items)
	return response.List(c, out, len(out), limit)
}

// parseLimit applies def when raw is empty and caps the value at max.
// Non-positive values pass through so the usecase rejects them.
func parseLimit(raw string, def, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if max > 0 && v > max {
		return max, nil
	}
	return v, nil
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidLimit):
		return middleware.NewAppError(fiber.StatusBadRequest, "Limit must be a positive integer", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
