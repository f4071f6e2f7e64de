package usecase

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSwapRequestNotFound = errors.New("skill request not found")
	ErrSkillNotInCatalog   = errors.New("skill not found in catalog")
	ErrReceiverNotFound    = errors.New("receiver not found")
	ErrRequestNotPending   = errors.New("request already approved or rejected")
)

type CreateSwapRequestInput struct {
	ReceiverID   uuid.UUID
	WantedSkill  string
	OfferedSkill string
}

type SwapRequestItem struct {
	ID               uuid.UUID
	SenderID         uuid.UUID
	ReceiverID       uuid.UUID
	SenderUsername   string
	SenderName       string
	ReceiverUsername string
	ReceiverName     string
	WantedSkill      string
	OfferedSkill     string
	Status           swap.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SwapNotifier pushes request events to connected parties. Implementations
// must not block; delivery is best effort.
type SwapNotifier interface {
	RequestCreated(item SwapRequestItem)
	RequestResolved(item SwapRequestItem)
}

type SwapRequestUsecase interface {
	// Create resolves both skill names against the catalog and fails when
	// either is missing; request creation never auto-creates skills.
	Create(ctx context.Context, senderID uuid.UUID, in CreateSwapRequestInput) (SwapRequestItem, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]SwapRequestItem, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]SwapRequestItem, error)
	// UpdateStatus moves a pending request to approved or rejected. Only the
	// receiver may act, and a terminal request stays terminal.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, newStatus swap.Status, actingUserID uuid.UUID) (SwapRequestItem, error)
}

type SwapRequest struct {
	requests repository.SwapRequestRepository
	skills   repository.SkillRepository
	users    user.Repository
	notifier SwapNotifier
}

func NewSwapRequestUsecase(
	requests repository.SwapRequestRepository,
	skills repository.SkillRepository,
	users user.Repository,
	notifier SwapNotifier,
) *SwapRequest {
	return &SwapRequest{requests: requests, skills: skills, users: users, notifier: notifier}
}

func (u *SwapRequest) Create(ctx context.Context, senderID uuid.UUID, in CreateSwapRequestInput) (SwapRequestItem, error) {
	if in.ReceiverID == uuid.Nil {
		return SwapRequestItem{}, NewValidationError("receiver", "required")
	}
	if in.ReceiverID == senderID {
		return SwapRequestItem{}, NewValidationError("receiver", "cannot request a swap with yourself")
	}

	wantedName := skill.NormalizeName(in.WantedSkill)
	offeredName := skill.NormalizeName(in.OfferedSkill)
	if wantedName == "" {
		return SwapRequestItem{}, NewValidationError("wanted_skill", "required")
	}
	if offeredName == "" {
		return SwapRequestItem{}, NewValidationError("offered_skill", "required")
	}

	wanted, err := u.skills.GetByName(ctx, wantedName)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SwapRequestItem{}, ErrSkillNotInCatalog
		}
		return SwapRequestItem{}, ErrInternal
	}
	offered, err := u.skills.GetByName(ctx, offeredName)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SwapRequestItem{}, ErrSkillNotInCatalog
		}
		return SwapRequestItem{}, ErrInternal
	}

	receiver, err := u.users.GetByID(ctx, in.ReceiverID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SwapRequestItem{}, ErrReceiverNotFound
		}
		return SwapRequestItem{}, ErrInternal
	}

	sender, err := u.users.GetByID(ctx, senderID)
	if err != nil {
		return SwapRequestItem{}, ErrInternal
	}

	created, err := u.requests.Create(ctx, swap.SkillRequest{
		ID:             uuid.New(),
		SenderID:       senderID,
		ReceiverID:     receiver.ID,
		WantedSkillID:  wanted.ID,
		OfferedSkillID: offered.ID,
		Status:         swap.StatusPending,
	})
	if err != nil {
		return SwapRequestItem{}, ErrInternal
	}

	item := SwapRequestItem{
		ID:               created.ID,
		SenderID:         created.SenderID,
		ReceiverID:       created.ReceiverID,
		SenderUsername:   sender.Username,
		SenderName:       sender.DisplayName(),
		ReceiverUsername: receiver.Username,
		ReceiverName:     receiver.DisplayName(),
		WantedSkill:      wanted.Name,
		OfferedSkill:     offered.Name,
		Status:           created.Status,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}

	if u.notifier != nil {
		u.notifier.RequestCreated(item)
	}
	return item, nil
}

func (u *SwapRequest) ListIncoming(ctx context.Context, userID uuid.UUID) ([]SwapRequestItem, error) {
	rows, err := u.requests.ListIncoming(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return toSwapRequestItems(rows), nil
}

func (u *SwapRequest) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]SwapRequestItem, error) {
	rows, err := u.requests.ListOutgoing(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return toSwapRequestItems(rows), nil
}

func (u *SwapRequest) UpdateStatus(ctx context.Context, requestID uuid.UUID, newStatus swap.Status, actingUserID uuid.UUID) (SwapRequestItem, error) {
	if !newStatus.Valid() || !newStatus.Terminal() {
		return SwapRequestItem{}, NewValidationError("status", "must be one of: approved, rejected")
	}

	current, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return SwapRequestItem{}, ErrSwapRequestNotFound
		}
		return SwapRequestItem{}, ErrInternal
	}

	if current.ReceiverID != actingUserID {
		return SwapRequestItem{}, ErrForbidden
	}
	if !current.Status.CanTransition(newStatus) {
		return SwapRequestItem{}, ErrRequestNotPending
	}

	updated, err := u.requests.UpdateStatus(ctx, requestID, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			// Lost a race against a concurrent transition on the same row.
			return SwapRequestItem{}, ErrRequestNotPending
		}
		return SwapRequestItem{}, ErrInternal
	}

	item, err := u.denormalize(ctx, updated)
	if err != nil {
		return SwapRequestItem{}, err
	}

	if u.notifier != nil {
		u.notifier.RequestResolved(item)
	}
	return item, nil
}

func (u *SwapRequest) denormalize(ctx context.Context, req swap.SkillRequest) (SwapRequestItem, error) {
	row, err := u.requests.GetRowByID(ctx, req.ID)
	if err != nil {
		return SwapRequestItem{}, ErrInternal
	}
	items := toSwapRequestItems([]repository.SwapRequestRow{row})
	return items[0], nil
}

func toSwapRequestItems(rows []repository.SwapRequestRow) []SwapRequestItem {
	out := make([]SwapRequestItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, SwapRequestItem{
			ID:               row.Request.ID,
			SenderID:         row.Request.SenderID,
			ReceiverID:       row.Request.ReceiverID,
			SenderUsername:   row.SenderUsername,
			SenderName:       row.SenderName,
			ReceiverUsername: row.ReceiverUsername,
			ReceiverName:     row.ReceiverName,
			WantedSkill:      row.WantedSkill,
			OfferedSkill:     row.OfferedSkill,
			Status:           row.Request.Status,
			CreatedAt:        row.Request.CreatedAt,
			UpdatedAt:        row.Request.UpdatedAt,
		})
	}
	return out
}
