package usecase

import (
	"context"
	"time"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type UserSkillItem struct {
	ID        uuid.UUID
	SkillID   uuid.UUID
	SkillName string
	Type      skill.Type
	CreatedAt time.Time
}

// BulkTagReport summarizes a batch of tag upserts. TotalProcessed counts the
// de-duplicated names, whether they produced new links or hit existing ones.
type BulkTagReport struct {
	CreatedUserSkills []UserSkillItem
	CreatedSkills     []string
	ExistingSkills    []string
	AlreadyExists     []string
	TotalProcessed    int
}

type GroupedUserSkills struct {
	Want  []UserSkillItem
	Offer []UserSkillItem
}

type UserSkillUsecase interface {
	ListGrouped(ctx context.Context, userID uuid.UUID) (GroupedUserSkills, error)
	ListByType(ctx context.Context, userID uuid.UUID, typ skill.Type) ([]UserSkillItem, error)
	// BulkTag normalizes and de-duplicates names, then upserts each
	// skill/link pair. Pairs are individually atomic; a failure partway
	// through leaves earlier pairs committed.
	BulkTag(ctx context.Context, userID uuid.UUID, typ skill.Type, names []string) (BulkTagReport, error)
	TagOne(ctx context.Context, userID uuid.UUID, typ skill.Type, name string) (UserSkillItem, bool, error)
}

type UserSkill struct {
	repo  repository.UserSkillRepository
	cache DirectoryCache
}

func NewUserSkillUsecase(repo repository.UserSkillRepository, cache DirectoryCache) *UserSkill {
	return &UserSkill{repo: repo, cache: cache}
}

func (u *UserSkill) ListGrouped(ctx context.Context, userID uuid.UUID) (GroupedUserSkills, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return GroupedUserSkills{}, ErrInternal
	}

	out := GroupedUserSkills{
		Want:  make([]UserSkillItem, 0),
		Offer: make([]UserSkillItem, 0),
	}
	for _, it := range items {
		item := toUserSkillItem(it)
		if it.Type == skill.TypeWant {
			out.Want = append(out.Want, item)
		} else {
			out.Offer = append(out.Offer, item)
		}
	}
	return out, nil
}

func (u *UserSkill) ListByType(ctx context.Context, userID uuid.UUID, typ skill.Type) ([]UserSkillItem, error) {
	if !typ.Valid() {
		return nil, NewValidationError("type", "must be one of: want, offer")
	}

	items, err := u.repo.FindByUserAndType(ctx, userID, typ)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toUserSkillItem(it))
	}
	return out, nil
}

func (u *UserSkill) BulkTag(ctx context.Context, userID uuid.UUID, typ skill.Type, names []string) (BulkTagReport, error) {
	if !typ.Valid() {
		return BulkTagReport{}, NewValidationError("type", "must be one of: want, offer")
	}
	if len(names) == 0 {
		return BulkTagReport{}, NewValidationError("skills", "must be a non-empty list")
	}

	cleaned := skill.DedupeNames(names)
	if len(cleaned) == 0 {
		return BulkTagReport{}, NewValidationError("skills", "no valid skills provided")
	}

	report := BulkTagReport{
		CreatedUserSkills: make([]UserSkillItem, 0, len(cleaned)),
		CreatedSkills:     make([]string, 0),
		ExistingSkills:    make([]string, 0),
		AlreadyExists:     make([]string, 0),
		TotalProcessed:    len(cleaned),
	}

	for _, name := range cleaned {
		res, err := u.repo.UpsertSkillAndLink(ctx, userID, name, typ)
		if err != nil {
			return BulkTagReport{}, ErrInternal
		}

		if res.SkillCreated {
			report.CreatedSkills = append(report.CreatedSkills, res.Skill.Name)
		} else {
			report.ExistingSkills = append(report.ExistingSkills, res.Skill.Name)
		}

		if res.LinkCreated {
			report.CreatedUserSkills = append(report.CreatedUserSkills, toUserSkillItem(res.Link))
		} else {
			report.AlreadyExists = append(report.AlreadyExists, res.Skill.Name)
		}
	}

	u.invalidateDirectory(ctx)
	return report, nil
}

func (u *UserSkill) TagOne(ctx context.Context, userID uuid.UUID, typ skill.Type, name string) (UserSkillItem, bool, error) {
	if !typ.Valid() {
		return UserSkillItem{}, false, NewValidationError("type", "must be one of: want, offer")
	}
	normalized := skill.NormalizeName(name)
	if normalized == "" {
		return UserSkillItem{}, false, NewValidationError("skill", "must not be blank")
	}

	res, err := u.repo.UpsertSkillAndLink(ctx, userID, normalized, typ)
	if err != nil {
		return UserSkillItem{}, false, ErrInternal
	}

	u.invalidateDirectory(ctx)
	return toUserSkillItem(res.Link), res.LinkCreated, nil
}

func (u *UserSkill) invalidateDirectory(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, directoryCachePattern)
}

func toUserSkillItem(us skill.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:        us.ID,
		SkillID:   us.SkillID,
		SkillName: us.SkillName,
		Type:      us.Type,
		CreatedAt: us.CreatedAt,
	}
}
