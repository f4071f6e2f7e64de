package ws

import (
	"encoding/json"
	"time"

	"skill-swap/internal/usecase"

	"github.com/google/uuid"
)

type SwapEvent struct {
	Type         string    `json:"type"`
	RequestID    uuid.UUID `json:"request_id"`
	SenderID     uuid.UUID `json:"sender_id"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	WantedSkill  string    `json:"wanted_skill"`
	OfferedSkill string    `json:"offered_skill"`
	Status       string    `json:"status"`
	Timestamp    string    `json:"timestamp"`
}

// SwapNotifier fans swap lifecycle events out over the hub. Creation goes
// to the receiver, resolution goes to the sender.
type SwapNotifier struct {
	hub *Hub
}

func NewSwapNotifier(hub *Hub) *SwapNotifier {
	return &SwapNotifier{hub: hub}
}

func (n *SwapNotifier) RequestCreated(item usecase.SwapRequestItem) {
	n.send("request_created", item, item.ReceiverID)
}

func (n *SwapNotifier) RequestResolved(item usecase.SwapRequestItem) {
	n.send("request_resolved", item, item.SenderID)
}

func (n *SwapNotifier) send(eventType string, item usecase.SwapRequestItem, to uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := SwapEvent{
		Type:         eventType,
		RequestID:    item.ID,
		SenderID:     item.SenderID,
		ReceiverID:   item.ReceiverID,
		WantedSkill:  item.WantedSkill,
		OfferedSkill: item.OfferedSkill,
		Status:       string(item.Status),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.SendToUser(to, b)
}
