package usecase

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/domain/rating"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrAlreadyRated   = errors.New("you have already rated this user")
	ErrSelfRating     = errors.New("you cannot rate yourself")
	ErrRatedNotFound  = errors.New("rated user not found")
)

type SubmitRatingInput struct {
	ReceiverID uuid.UUID
	Score      int
	Feedback   *string
}

type UpdateRatingInput struct {
	Score    *int
	Feedback *string
}

type RatingItem struct {
	ID               uuid.UUID
	SenderID         uuid.UUID
	ReceiverID       uuid.UUID
	SenderUsername   string
	SenderName       string
	ReceiverUsername string
	ReceiverName     string
	Score            int
	Feedback         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RatingUsecase interface {
	// Submit creates the single rating a sender may hold against a receiver;
	// a second submission for the same pair fails with ErrAlreadyRated.
	Submit(ctx context.Context, senderID uuid.UUID, in SubmitRatingInput) (RatingItem, error)
	Update(ctx context.Context, ratingID, actingUserID uuid.UUID, in UpdateRatingInput) (RatingItem, error)
	Delete(ctx context.Context, ratingID, actingUserID uuid.UUID) error
	ListReceived(ctx context.Context, userID uuid.UUID) ([]RatingItem, error)
	Stats(ctx context.Context, userID uuid.UUID) (rating.Stats, error)
}

type Rating struct {
	ratings repository.RatingRepository
	users   user.Repository
	cache   DirectoryCache
}

func NewRatingUsecase(ratings repository.RatingRepository, users user.Repository, cache DirectoryCache) *Rating {
	return &Rating{ratings: ratings, users: users, cache: cache}
}

func (u *Rating) Submit(ctx context.Context, senderID uuid.UUID, in SubmitRatingInput) (RatingItem, error) {
	if in.ReceiverID == uuid.Nil {
		return RatingItem{}, NewValidationError("receiver", "required")
	}
	if in.ReceiverID == senderID {
		return RatingItem{}, ErrSelfRating
	}
	if !rating.ValidScore(in.Score) {
		return RatingItem{}, NewValidationError("score", "must be between 1 and 5")
	}

	if _, err := u.users.GetByID(ctx, in.ReceiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return RatingItem{}, ErrRatedNotFound
		}
		return RatingItem{}, ErrInternal
	}

	created, err := u.ratings.Create(ctx, rating.Rating{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: in.ReceiverID,
		Score:      in.Score,
		Feedback:   in.Feedback,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyRated):
			return RatingItem{}, ErrAlreadyRated
		case errors.Is(err, repository.ErrRatedUserGone):
			return RatingItem{}, ErrRatedNotFound
		case errors.Is(err, repository.ErrInvalidRating):
			return RatingItem{}, NewValidationError("score", "must be between 1 and 5")
		default:
			return RatingItem{}, ErrInternal
		}
	}

	u.invalidateDirectory(ctx)
	return u.itemFor(ctx, created)
}

func (u *Rating) Update(ctx context.Context, ratingID, actingUserID uuid.UUID, in UpdateRatingInput) (RatingItem, error) {
	if in.Score == nil && in.Feedback == nil {
		return RatingItem{}, NewValidationError("score", "nothing to update")
	}

	// Read through the sender scope so updating another user's rating is
	// indistinguishable from a missing one.
	current, err := u.ratings.GetBySender(ctx, ratingID, actingUserID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return RatingItem{}, ErrRatingNotFound
		}
		return RatingItem{}, ErrInternal
	}

	score := current.Score
	if in.Score != nil {
		score = *in.Score
	}
	if !rating.ValidScore(score) {
		return RatingItem{}, NewValidationError("score", "must be between 1 and 5")
	}
	feedback := current.Feedback
	if in.Feedback != nil {
		feedback = in.Feedback
	}

	updated, err := u.ratings.Update(ctx, ratingID, actingUserID, score, feedback)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return RatingItem{}, ErrRatingNotFound
		}
		if errors.Is(err, repository.ErrInvalidRating) {
			return RatingItem{}, NewValidationError("score", "must be between 1 and 5")
		}
		return RatingItem{}, ErrInternal
	}

	u.invalidateDirectory(ctx)
	return u.itemFor(ctx, updated)
}

func (u *Rating) Delete(ctx context.Context, ratingID, actingUserID uuid.UUID) error {
	if err := u.ratings.Delete(ctx, ratingID, actingUserID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return ErrRatingNotFound
		}
		return ErrInternal
	}
	u.invalidateDirectory(ctx)
	return nil
}

func (u *Rating) ListReceived(ctx context.Context, userID uuid.UUID) ([]RatingItem, error) {
	rows, err := u.ratings.ListReceived(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RatingItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, RatingItem{
			ID:               row.Rating.ID,
			SenderID:         row.Rating.SenderID,
			ReceiverID:       row.Rating.ReceiverID,
			SenderUsername:   row.SenderUsername,
			SenderName:       row.SenderName,
			ReceiverUsername: row.ReceiverUsername,
			ReceiverName:     row.ReceiverName,
			Score:            row.Rating.Score,
			Feedback:         row.Rating.Feedback,
			CreatedAt:        row.Rating.CreatedAt,
			UpdatedAt:        row.Rating.UpdatedAt,
		})
	}
	return out, nil
}

func (u *Rating) Stats(ctx context.Context, userID uuid.UUID) (rating.Stats, error) {
	stats, err := u.ratings.Stats(ctx, userID)
	if err != nil {
		return rating.Stats{}, ErrInternal
	}
	return stats, nil
}

func (u *Rating) itemFor(ctx context.Context, rt rating.Rating) (RatingItem, error) {
	sender, err := u.users.GetByID(ctx, rt.SenderID)
	if err != nil {
		return RatingItem{}, ErrInternal
	}
	receiver, err := u.users.GetByID(ctx, rt.ReceiverID)
	if err != nil {
		return RatingItem{}, ErrInternal
	}

	return RatingItem{
		ID:               rt.ID,
		SenderID:         rt.SenderID,
		ReceiverID:       rt.ReceiverID,
		SenderUsername:   sender.Username,
		SenderName:       sender.DisplayName(),
		ReceiverUsername: receiver.Username,
		ReceiverName:     receiver.DisplayName(),
		Score:            rt.Score,
		Feedback:         rt.Feedback,
		CreatedAt:        rt.CreatedAt,
		UpdatedAt:        rt.UpdatedAt,
	}, nil
}

func (u *Rating) invalidateDirectory(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, directoryCachePattern)
}
