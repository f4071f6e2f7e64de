package dto

import (
	"time"

	"skill-swap/internal/usecase"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSkillResponse(s usecase.SkillItem) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}

type UserSkillResponse struct {
	ID        uuid.UUID `json:"id"`
	SkillID   uuid.UUID `json:"skill_id"`
	Skill     string    `json:"skill"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserSkillResponse(it usecase.UserSkillItem) UserSkillResponse {
	return UserSkillResponse{
		ID:        it.ID,
		SkillID:   it.SkillID,
		Skill:     it.SkillName,
		Type:      string(it.Type),
		CreatedAt: it.CreatedAt,
	}
}

type GroupedUserSkillsResponse struct {
	Want  []UserSkillResponse `json:"want"`
	Offer []UserSkillResponse `json:"offer"`
}

type BulkTagResponse struct {
	CreatedUserSkills []UserSkillResponse `json:"created_user_skills"`
	CreatedSkills     []string            `json:"created_skills"`
	ExistingSkills    []string            `json:"existing_skills"`
	AlreadyExists     []string            `json:"already_exists"`
	TotalProcessed    int                 `json:"total_processed"`
}

func NewBulkTagResponse(r usecase.BulkTagReport) BulkTagResponse {
	created := make([]UserSkillResponse, 0, len(r.CreatedUserSkills))
	for _, it := range r.CreatedUserSkills {
		created = append(created, NewUserSkillResponse(it))
	}
	return BulkTagResponse{
		CreatedUserSkills: created,
		CreatedSkills:     r.CreatedSkills,
		ExistingSkills:    r.ExistingSkills,
		AlreadyExists:     r.AlreadyExists,
		TotalProcessed:    r.TotalProcessed,
	}
}
