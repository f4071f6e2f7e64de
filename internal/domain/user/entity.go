package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Bio          *string
	Location     *string
	ProfilePhoto *string
	Availability []string
	IsActive     bool
	IsBanned     bool
	IsPrivate    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is the full name when either part is set, the username otherwise.
func (u User) DisplayName() string {
	name := ""
	if u.FirstName != nil {
		name = *u.FirstName
	}
	if u.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}

// Visible reports whether the user appears in public listings and lookups.
func (u User) Visible() bool {
	return u.IsActive && !u.IsBanned && !u.IsPrivate
}
