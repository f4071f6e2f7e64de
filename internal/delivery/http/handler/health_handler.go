package handler

import (
	"skill-swap/internal/database"
	"skill-swap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	status := "ok"
	dbStatus := "up"
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		status = "degraded"
		dbStatus = "down"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":   status,
		"database": dbStatus,
	})
}
