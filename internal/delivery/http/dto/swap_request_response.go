package dto

import (
	"time"

	"skill-swap/internal/usecase"

	"github.com/google/uuid"
)

type SwapRequestResponse struct {
	ID               uuid.UUID `json:"id"`
	SenderID         uuid.UUID `json:"sender_id"`
	ReceiverID       uuid.UUID `json:"receiver_id"`
	SenderUsername   string    `json:"sender_username"`
	SenderName       string    `json:"sender_name"`
	ReceiverUsername string    `json:"receiver_username"`
	ReceiverName     string    `json:"receiver_name"`
	WantedSkill      string    `json:"wanted_skill"`
	OfferedSkill     string    `json:"offered_skill"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewSwapRequestResponse(it usecase.SwapRequestItem) SwapRequestResponse {
	return SwapRequestResponse{
		ID:               it.ID,
		SenderID:         it.SenderID,
		ReceiverID:       it.ReceiverID,
		SenderUsername:   it.SenderUsername,
		SenderName:       it.SenderName,
		ReceiverUsername: it.ReceiverUsername,
		ReceiverName:     it.ReceiverName,
		WantedSkill:      it.WantedSkill,
		OfferedSkill:     it.OfferedSkill,
		Status:           string(it.Status),
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

func NewSwapRequestResponses(items []usecase.SwapRequestItem) []SwapRequestResponse {
	out := make([]SwapRequestResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSwapRequestResponse(it))
	}
	return out
}
