package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

func TestUserSkillBulkTagInvalidType(t *testing.T) {
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, nil)
	_, err := uc.BulkTag(context.Background(), uuid.New(), skill.Type("teach"), []string{"Guitar"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserSkillBulkTagEmptyList(t *testing.T) {
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, nil)
	_, err := uc.BulkTag(context.Background(), uuid.New(), skill.TypeWant, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = uc.BulkTag(context.Background(), uuid.New(), skill.TypeWant, []string{"  ", ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank names, got %v", err)
	}
}

func TestUserSkillBulkTagDeduplicates(t *testing.T) {
	repo := &mockUserSkillRepo{}
	uc := NewUserSkillUsecase(repo, nil)

	report, err := uc.BulkTag(context.Background(), uuid.New(), skill.TypeWant, []string{"guitar", "GUITAR", "piano"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(repo.calls, []string{"Guitar", "Piano"}) {
		t.Fatalf("unexpected upsert calls: %v", repo.calls)
	}
	if report.TotalProcessed != 2 {
		t.Fatalf("expected 2 processed, got %d", report.TotalProcessed)
	}
	if len(report.CreatedUserSkills) != 2 || len(report.CreatedSkills) != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestUserSkillBulkTagReportsExisting(t *testing.T) {
	existing := skill.Skill{ID: uuid.New(), Name: "Guitar"}
	repo := &mockUserSkillRepo{
		results: map[string]repository.TagResult{
			"Guitar": {
				Skill:        existing,
				SkillCreated: false,
				Link:         skill.UserSkill{},
				LinkCreated:  false,
			},
		},
	}
	cache := &mockCache{}
	uc := NewUserSkillUsecase(repo, cache)

	report, err := uc.BulkTag(context.Background(), uuid.New(), skill.TypeOffer, []string{"guitar", "chess"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(report.ExistingSkills, []string{"Guitar"}) {
		t.Fatalf("unexpected existing skills: %v", report.ExistingSkills)
	}
	if !reflect.DeepEqual(report.AlreadyExists, []string{"Guitar"}) {
		t.Fatalf("unexpected already exists: %v", report.AlreadyExists)
	}
	if len(report.CreatedUserSkills) != 1 {
		t.Fatalf("expected 1 created link, got %d", len(report.CreatedUserSkills))
	}
	if len(cache.deleted) == 0 {
		t.Fatalf("expected directory cache invalidation")
	}
}

func TestUserSkillTagOneBlankName(t *testing.T) {
	uc := NewUserSkillUsecase(&mockUserSkillRepo{}, nil)
	_, _, err := uc.TagOne(context.Background(), uuid.New(), skill.TypeWant, "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserSkillListGrouped(t *testing.T) {
	userID := uuid.New()
	repo := &mockUserSkillRepo{links: []skill.UserSkill{
		{ID: uuid.New(), UserID: userID, SkillName: "Guitar", Type: skill.TypeWant},
		{ID: uuid.New(), UserID: userID, SkillName: "Piano", Type: skill.TypeOffer},
		{ID: uuid.New(), UserID: userID, SkillName: "Chess", Type: skill.TypeWant},
	}}
	uc := NewUserSkillUsecase(repo, nil)

	grouped, err := uc.ListGrouped(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(grouped.Want) != 2 || len(grouped.Offer) != 1 {
		t.Fatalf("unexpected partition: want=%d offer=%d", len(grouped.Want), len(grouped.Offer))
	}
}

func TestUserSkillListByType(t *testing.T) {
	userID := uuid.New()
	repo := &mockUserSkillRepo{links: []skill.UserSkill{
		{ID: uuid.New(), UserID: userID, SkillName: "Guitar", Type: skill.TypeWant},
		{ID: uuid.New(), UserID: userID, SkillName: "Piano", Type: skill.TypeOffer},
		{ID: uuid.New(), UserID: userID, SkillName: "Chess", Type: skill.TypeWant},
	}}
	uc := NewUserSkillUsecase(repo, nil)

	items, err := uc.ListByType(context.Background(), userID, skill.TypeWant)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 want skills, got %d", len(items))
	}
	for _, it := range items {
		if it.Type != skill.TypeWant {
			t.Fatalf("unexpected type in filtered list: %s", it.Type)
		}
	}

	if _, err := uc.ListByType(context.Background(), userID, skill.Type("teach")); err == nil {
		t.Fatalf("expected validation error for unknown type")
	}
}
