package dto

import (
	"time"

	"skill-swap/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	ProfilePhoto *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	Bio          *string   `json:"bio"`
	Location     *string   `json:"location"`
	ProfilePhoto *string   `json:"profile_image"`
	Availability []string  `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`

	WantSkills    []UserSkillNameResponse `json:"want_skills"`
	OfferSkills   []UserSkillNameResponse `json:"offer_skills"`
	AverageRating float64                 `json:"average_rating"`
	TotalRatings  int                     `json:"total_ratings"`
}

type UserSkillNameResponse struct {
	Skill     string    `json:"skill"`
	CreatedAt time.Time `json:"created_at"`
}

type DirectoryResponse struct {
	Users       []ProfileResponse `json:"users"`
	TotalUsers  int               `json:"total_users"`
	TotalPages  int               `json:"total_pages"`
	CurrentPage int               `json:"current_page"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

func NewProfileResponse(p usecase.Profile) ProfileResponse {
	want := make([]UserSkillNameResponse, 0, len(p.WantSkills))
	for _, s := range p.WantSkills {
		want = append(want, UserSkillNameResponse{Skill: s.SkillName, CreatedAt: s.CreatedAt})
	}
	offer := make([]UserSkillNameResponse, 0, len(p.OfferSkills))
	for _, s := range p.OfferSkills {
		offer = append(offer, UserSkillNameResponse{Skill: s.SkillName, CreatedAt: s.CreatedAt})
	}

	return ProfileResponse{
		ID:            p.ID,
		Email:         p.Email,
		Username:      p.Username,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Bio:           p.Bio,
		Location:      p.Location,
		ProfilePhoto:  p.ProfilePhoto,
		Availability:  p.Availability,
		CreatedAt:     p.CreatedAt,
		WantSkills:    want,
		OfferSkills:   offer,
		AverageRating: p.AverageRating,
		TotalRatings:  p.TotalRatings,
	}
}

func NewDirectoryResponse(page usecase.DirectoryPage) DirectoryResponse {
	users := make([]ProfileResponse, 0, len(page.Users))
	for _, p := range page.Users {
		users = append(users, NewProfileResponse(p))
	}
	return DirectoryResponse{
		Users:       users,
		TotalUsers:  page.TotalUsers,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
}
