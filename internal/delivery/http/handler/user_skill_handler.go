package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

// createUserSkillsRequest covers both shapes the endpoint accepts:
// bulk  {"type": "want", "skills": ["python", "js"]}
// single {"type": "want", "skill": "python"}
type createUserSkillsRequest struct {
	Type   string   `json:"type"`
	Skills []string `json:"skills"`
	Skill  string   `json:"skill"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/user-skills", h.List)
	r.Post("/user-skills", h.Create)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if typ := c.Query("type"); typ != "" {
		items, err := h.uc.ListByType(c.Context(), userID, skill.Type(typ))
		if err != nil {
			return mapUserSkillUsecaseError(err)
		}
		res := make([]dto.UserSkillResponse, 0, len(items))
		for _, it := range items {
			res = append(res, dto.NewUserSkillResponse(it))
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, res)
	}

	grouped, err := h.uc.ListGrouped(c.Context(), userID)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	res := dto.GroupedUserSkillsResponse{
		Want:  make([]dto.UserSkillResponse, 0, len(grouped.Want)),
		Offer: make([]dto.UserSkillResponse, 0, len(grouped.Offer)),
	}
	for _, it := range grouped.Want {
		res.Want = append(res.Want, dto.NewUserSkillResponse(it))
	}
	for _, it := range grouped.Offer {
		res.Offer = append(res.Offer, dto.NewUserSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *UserSkillHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createUserSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if len(req.Skills) > 0 {
		report, err := h.uc.BulkTag(c.Context(), userID, skill.Type(req.Type), req.Skills)
		if err != nil {
			return mapUserSkillUsecaseError(err)
		}
		return response.Success(c, fiber.StatusCreated, "User skills processed successfully", dto.NewBulkTagResponse(report))
	}

	item, created, err := h.uc.TagOne(c.Context(), userID, skill.Type(req.Type), req.Skill)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return response.Success(c, status, response.DefaultMessageForStatus(status), dto.NewUserSkillResponse(item))
}

func mapUserSkillUsecaseError(err error) error {
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
