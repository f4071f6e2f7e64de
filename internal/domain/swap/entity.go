package swap

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a skill request. A request starts pending
// and moves exactly once to approved or rejected; both are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether a request in state s may move to next.
func (s Status) CanTransition(next Status) bool {
	return s == StatusPending && next.Terminal()
}

type SkillRequest struct {
	ID             uuid.UUID
	SenderID       uuid.UUID
	ReceiverID     uuid.UUID
	WantedSkillID  uuid.UUID
	OfferedSkillID uuid.UUID
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
