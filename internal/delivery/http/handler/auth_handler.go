package handler

import (
	"errors"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	ucauth "skill-swap/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc ucauth.AuthUsecase
}

type registerRequest struct {
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	Availability []string `json:"availability"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc ucauth.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, pair, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Availability: req.Availability,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"user": dto.UserResponse{
			ID:           usr.ID,
			Email:        usr.Email,
			Username:     usr.Username,
			FirstName:    usr.FirstName,
			LastName:     usr.LastName,
			ProfilePhoto: usr.ProfilePhoto,
			CreatedAt:    usr.CreatedAt,
		},
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, pair, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"user": dto.UserResponse{
			ID:           usr.ID,
			Email:        usr.Email,
			Username:     usr.Username,
			FirstName:    usr.FirstName,
			LastName:     usr.LastName,
			ProfilePhoto: usr.ProfilePhoto,
			CreatedAt:    usr.CreatedAt,
		},
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := middleware.BearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrUsernameAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, ucauth.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, ucauth.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
