package handler

import (
	"errors"
	"strconv"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	Bio          *string  `json:"bio"`
	Location     *string  `json:"location"`
	ProfilePhoto *string  `json:"profile_image"`
	Availability []string `json:"availability"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterProfileRoutes go behind the auth middleware; RegisterPublicRoutes
// do not.
func (h *UserHandler) RegisterProfileRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Delete("/profile", h.DeleteProfile)
}

func (h *UserHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListDirectory)
	r.Get("/users/:id", h.GetByID)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	profile, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	profile, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          req.Bio,
		Location:     req.Location,
		ProfilePhoto: req.ProfilePhoto,
		Availability: req.Availability,
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}

func (h *UserHandler) DeleteProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.DeleteProfile(c.Context(), userID); err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile deleted successfully", nil)
}

func (h *UserHandler) ListDirectory(c fiber.Ctx) error {
	page := queryInt(c, "current_page", 1)
	limit := queryInt(c, "limit", 10)

	result, err := h.uc.ListDirectory(c.Context(), usecase.DirectoryParams{
		Page:      page,
		Limit:     limit,
		SkillName: c.Query("skills"),
		SkillType: c.Query("skill_type"),
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDirectoryResponse(result))
}

func (h *UserHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	}

	profile, err := h.uc.GetPublicByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", vErr.Fields, err)
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
