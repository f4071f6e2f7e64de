package usecase

import (
	"context"
	"time"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	// AddSkill normalizes the name and get-or-creates it; adding an existing
	// skill is not an error, it returns the canonical row.
	AddSkill(ctx context.Context, name string) (SkillItem, bool, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name, CreatedAt: it.CreatedAt})
	}
	return out, nil
}

func (u *Skill) AddSkill(ctx context.Context, name string) (SkillItem, bool, error) {
	normalized := skill.NormalizeName(name)
	if normalized == "" {
		return SkillItem{}, false, NewValidationError("name", "must not be blank")
	}

	s, created, err := u.repo.Upsert(ctx, normalized)
	if err != nil {
		return SkillItem{}, false, ErrInternal
	}
	return SkillItem{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}, created, nil
}
