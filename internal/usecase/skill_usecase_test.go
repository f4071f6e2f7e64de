package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
)

func TestAddSkillNormalizesName(t *testing.T) {
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo)

	item, created, err := uc.AddSkill(context.Background(), "  web   development ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if item.Name != "Web Development" {
		t.Fatalf("expected normalized name, got %q", item.Name)
	}
}

func TestAddSkillExistingReturnsCanonical(t *testing.T) {
	existing := skill.Skill{ID: uuid.New(), Name: "Guitar"}
	repo := &mockSkillRepo{byName: map[string]skill.Skill{"Guitar": existing}}
	uc := NewSkillUsecase(repo)

	item, created, err := uc.AddSkill(context.Background(), "GUITAR")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for existing skill")
	}
	if item.ID != existing.ID {
		t.Fatalf("expected canonical row")
	}
}

func TestAddSkillBlankName(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{})
	_, _, err := uc.AddSkill(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
