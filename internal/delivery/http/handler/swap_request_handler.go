package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SwapRequestHandler struct {
	uc usecase.SwapRequestUsecase
}

type createSwapRequestRequest struct {
	ReceiverID   uuid.UUID `json:"receiver_id"`
	WantedSkill  string    `json:"wanted_skill"`
	OfferedSkill string    `json:"offered_skill"`
}

type updateSwapRequestRequest struct {
	Status string `json:"status"`
}

func NewSwapRequestHandler(uc usecase.SwapRequestUsecase) *SwapRequestHandler {
	return &SwapRequestHandler{uc: uc}
}

func (h *SwapRequestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skill-requests", h.ListIncoming)
	r.Post("/skill-requests", h.Create)
	r.Put("/skill-requests/:id", h.UpdateStatus)
	r.Get("/skill-sender", h.ListOutgoing)
}

func (h *SwapRequestHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createSwapRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Create(c.Context(), userID, usecase.CreateSwapRequestInput{
		ReceiverID:   req.ReceiverID,
		WantedSkill:  req.WantedSkill,
		OfferedSkill: req.OfferedSkill,
	})
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSwapRequestResponse(item))
}

func (h *SwapRequestHandler) ListIncoming(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListIncoming(c.Context(), userID)
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapRequestResponses(items))
}

func (h *SwapRequestHandler) ListOutgoing(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListOutgoing(c.Context(), userID)
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapRequestResponses(items))
}

func (h *SwapRequestHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Skill request not found", nil, err)
	}

	var req updateSwapRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.UpdateStatus(c.Context(), requestID, swap.Status(req.Status), userID)
	if err != nil {
		return mapSwapRequestUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwapRequestResponse(item))
}

func mapSwapRequestUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", vErr.Fields, err)
	}

	switch {
	case errors.Is(err, usecase.ErrSwapRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill request not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotInCatalog):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrReceiverNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Receiver not found", nil, err)
	case errors.Is(err, usecase.ErrRequestNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Request already approved or rejected", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the receiver may update this request", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
