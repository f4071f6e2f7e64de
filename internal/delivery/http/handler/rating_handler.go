package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

type submitRatingRequest struct {
	ReceiverID uuid.UUID `json:"receiver"`
	Score      int       `json:"rating_count"`
	Feedback   *string   `json:"feedback"`
}

type updateRatingRequest struct {
	Score    *int    `json:"rating_count"`
	Feedback *string `json:"feedback"`
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

func (h *RatingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/ratings", h.ListReceived)
	r.Post("/ratings", h.Submit)
	r.Put("/ratings/:id", h.Update)
	r.Delete("/ratings/:id", h.Delete)
}

func (h *RatingHandler) Submit(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req submitRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Submit(c.Context(), userID, usecase.SubmitRatingInput{
		ReceiverID: req.ReceiverID,
		Score:      req.Score,
		Feedback:   req.Feedback,
	})
	if err != nil {
		return mapRatingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewRatingResponse(item))
}

func (h *RatingHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ratingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Rating not found", nil, err)
	}

	var req updateRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.uc.Update(c.Context(), ratingID, userID, usecase.UpdateRatingInput{
		Score:    req.Score,
		Feedback: req.Feedback,
	})
	if err != nil {
		return mapRatingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRatingResponse(item))
}

func (h *RatingHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ratingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Rating not found", nil, err)
	}

	if err := h.uc.Delete(c.Context(), ratingID, userID); err != nil {
		return mapRatingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Rating deleted successfully", nil)
}

func (h *RatingHandler) ListReceived(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListReceived(c.Context(), userID)
	if err != nil {
		return mapRatingUsecaseError(err)
	}

	res := make([]dto.RatingResponse, 0, len(items))
	for _, it := range items {
		res = append(res, dto.NewRatingResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapRatingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", vErr.Fields, err)
	}

	switch {
	case errors.Is(err, usecase.ErrSelfRating):
		return middleware.NewAppError(fiber.StatusBadRequest, "You cannot rate yourself", nil, err)
	case errors.Is(err, usecase.ErrAlreadyRated):
		return middleware.NewAppError(fiber.StatusConflict, "You have already rated this user", nil, err)
	case errors.Is(err, usecase.ErrRatingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Rating not found", nil, err)
	case errors.Is(err, usecase.ErrRatedNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Rated user not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
