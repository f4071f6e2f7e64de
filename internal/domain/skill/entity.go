package skill

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Type tags the direction of a user-skill link.
type Type string

const (
	TypeWant  Type = "want"
	TypeOffer Type = "offer"
)

func (t Type) Valid() bool {
	return t == TypeWant || t == TypeOffer
}

type UserSkill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Type      Type
	CreatedAt time.Time
}
