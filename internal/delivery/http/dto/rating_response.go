package dto

import (
	"time"

	"skill-swap/internal/usecase"

	"github.com/google/uuid"
)

type RatingResponse struct {
	ID               uuid.UUID `json:"id"`
	SenderID         uuid.UUID `json:"sender"`
	ReceiverID       uuid.UUID `json:"receiver"`
	SenderUsername   string    `json:"sender_username"`
	SenderName       string    `json:"sender_name"`
	ReceiverUsername string    `json:"receiver_username"`
	ReceiverName     string    `json:"receiver_name"`
	Score            int       `json:"rating_count"`
	Feedback         *string   `json:"feedback"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewRatingResponse(it usecase.RatingItem) RatingResponse {
	return RatingResponse{
		ID:               it.ID,
		SenderID:         it.SenderID,
		ReceiverID:       it.ReceiverID,
		SenderUsername:   it.SenderUsername,
		SenderName:       it.SenderName,
		ReceiverUsername: it.ReceiverUsername,
		ReceiverName:     it.ReceiverName,
		Score:            it.Score,
		Feedback:         it.Feedback,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}
