package usecase

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type SkillNameItem struct {
	SkillName string
	CreatedAt time.Time
}

// Profile is the public view of one user, enriched with the want/offer skill
// partition and the rating aggregate.
type Profile struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    *string
	LastName     *string
	Bio          *string
	Location     *string
	ProfilePhoto *string
	Availability []string
	CreatedAt    time.Time

	WantSkills    []SkillNameItem
	OfferSkills   []SkillNameItem
	AverageRating float64
	TotalRatings  int
}

type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Bio          *string
	Location     *string
	ProfilePhoto *string
	Availability []string
}

type DirectoryParams struct {
	Page      int
	Limit     int
	SkillName string
	SkillType string
}

type DirectoryPage struct {
	Users       []Profile
	TotalUsers  int
	TotalPages  int
	CurrentPage int
	HasNext     bool
	HasPrevious bool
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	// GetPublicByID hides banned, private, and inactive users behind the same
	// ErrNotFound as missing ones.
	GetPublicByID(ctx context.Context, id uuid.UUID) (Profile, error)
	ListDirectory(ctx context.Context, p DirectoryParams) (DirectoryPage, error)
}

type User struct {
	users   user.Repository
	query   repository.UserQueryRepository
	skills  repository.UserSkillRepository
	ratings repository.RatingRepository
	cache   DirectoryCache
	ttl     time.Duration
}

func NewUserUsecase(
	users user.Repository,
	query repository.UserQueryRepository,
	skills repository.UserSkillRepository,
	ratings repository.RatingRepository,
	cache DirectoryCache,
	cacheTTL time.Duration,
) *User {
	return &User{users: users, query: query, skills: skills, ratings: ratings, cache: cache, ttl: cacheTTL}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}
	return u.enrich(ctx, usr)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	current, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	if in.FirstName != nil {
		current.FirstName = in.FirstName
	}
	if in.LastName != nil {
		current.LastName = in.LastName
	}
	if in.Bio != nil {
		current.Bio = in.Bio
	}
	if in.Location != nil {
		current.Location = in.Location
	}
	if in.ProfilePhoto != nil {
		current.ProfilePhoto = in.ProfilePhoto
	}
	if in.Availability != nil {
		availability, err := user.NormalizeAvailability(in.Availability)
		if err != nil {
			return Profile{}, NewValidationError("availability", err.Error())
		}
		current.Availability = availability
	}

	updated, err := u.users.UpdateProfile(ctx, current)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	u.invalidateDirectory(ctx)
	return u.enrich(ctx, updated)
}

func (u *User) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	u.invalidateDirectory(ctx)
	return nil
}

func (u *User) GetPublicByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}
	if !usr.Visible() {
		return Profile{}, ErrNotFound
	}
	return u.enrich(ctx, usr)
}

func (u *User) ListDirectory(ctx context.Context, p DirectoryParams) (DirectoryPage, error) {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	key := directoryCacheKey(page, limit, p.SkillName, p.SkillType)
	if u.cache != nil {
		var cached DirectoryPage
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	filter := repository.DirectoryFilter{
		SkillName: p.SkillName,
		SkillType: p.SkillType,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	total, err := u.query.CountVisible(ctx, filter)
	if err != nil {
		return DirectoryPage{}, ErrInternal
	}

	users, err := u.query.ListVisible(ctx, filter)
	if err != nil {
		return DirectoryPage{}, ErrInternal
	}

	profiles := make([]Profile, 0, len(users))
	for _, usr := range users {
		profile, err := u.enrich(ctx, usr)
		if err != nil {
			return DirectoryPage{}, err
		}
		profiles = append(profiles, profile)
	}

	totalPages := (total + limit - 1) / limit
	result := DirectoryPage{
		Users:       profiles,
		TotalUsers:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, result, u.ttl)
	}
	return result, nil
}

// enrich is the fan-out read: skills partitioned by type plus rating stats.
func (u *User) enrich(ctx context.Context, usr user.User) (Profile, error) {
	links, err := u.skills.FindByUserID(ctx, usr.ID)
	if err != nil {
		return Profile{}, ErrInternal
	}

	stats, err := u.ratings.Stats(ctx, usr.ID)
	if err != nil {
		return Profile{}, ErrInternal
	}

	profile := Profile{
		ID:            usr.ID,
		Email:         usr.Email,
		Username:      usr.Username,
		FirstName:     usr.FirstName,
		LastName:      usr.LastName,
		Bio:           usr.Bio,
		Location:      usr.Location,
		ProfilePhoto:  usr.ProfilePhoto,
		Availability:  usr.Availability,
		CreatedAt:     usr.CreatedAt,
		WantSkills:    make([]SkillNameItem, 0),
		OfferSkills:   make([]SkillNameItem, 0),
		AverageRating: stats.Average,
		TotalRatings:  stats.Total,
	}

	for _, link := range links {
		item := SkillNameItem{SkillName: link.SkillName, CreatedAt: link.CreatedAt}
		if link.Type == skill.TypeWant {
			profile.WantSkills = append(profile.WantSkills, item)
		} else {
			profile.OfferSkills = append(profile.OfferSkills, item)
		}
	}
	return profile, nil
}

func (u *User) invalidateDirectory(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, directoryCachePattern)
}
