package rating

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

type Rating struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Score      int
	Feedback   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Stats is the aggregate over all ratings received by one user.
// Average is 0 when Total is 0, never NaN.
type Stats struct {
	Average float64
	Total   int
}
