package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type addSkillRequest struct {
	Name string `json:"name"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.List)
	r.Post("/skills", h.Add)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	res := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Add(c fiber.Ctx) error {
	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, created, err := h.uc.AddSkill(c.Context(), req.Name)
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return response.Success(c, status, response.DefaultMessageForStatus(status), dto.NewSkillResponse(item))
}

func mapSkillUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", vErr.Fields, err)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
