package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/jwt"
)

var (
	ErrEmailAlreadyRegistered    = errors.New("email already registered")
	ErrUsernameAlreadyRegistered = errors.New("username already registered")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidRefreshToken       = errors.New("invalid refresh token")
	ErrRefreshTokenExpired       = errors.New("refresh token expired")
	ErrInvalidInput              = errors.New("invalid input")
	ErrInternal                  = errors.New("internal error")
)

const minPasswordLen = 5

type RegisterInput struct {
	Email        string
	Username     string
	Password     string
	FirstName    *string
	LastName     *string
	Availability []string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Service struct {
	users user.Repository
	jwt   jwt.Service
}

func NewService(users user.Repository, jwtSvc jwt.Service) *Service {
	return &Service{users: users, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	if email == "" || !strings.Contains(email, "@") {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if username == "" {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	availability, err := user.NormalizeAvailability(in.Availability)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	if exists, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	} else if exists {
		return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
	}
	if exists, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	} else if exists {
		return user.User{}, TokenPair{}, ErrUsernameAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Availability: availability,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		// The pre-checks race with concurrent registrations; the unique
		// constraints are authoritative.
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
		case errors.Is(err, user.ErrUsernameTaken):
			return user.User{}, TokenPair{}, ErrUsernameAlreadyRegistered
		default:
			return user.User{}, TokenPair{}, ErrInternal
		}
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}

	pair, err := s.issueTokens(created.ID, created.Email)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(created), pair, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if !u.IsActive || u.IsBanned {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(u.ID, u.Email)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitizeUser(u), pair, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}
	if !u.IsActive || u.IsBanned {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	pair, err := s.issueTokens(u.ID, u.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (s *Service) issueTokens(userID uuid.UUID, email string) (TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(userID, email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
