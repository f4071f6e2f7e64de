package repository

import (
	"context"
	"fmt"
	"strings"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/user"
)

// DirectoryFilter narrows the public user listing. SkillName is matched
// case-insensitively against the catalog; SkillType scopes the match to one
// link type, or both when empty/"all".
type DirectoryFilter struct {
	SkillName string
	SkillType string

	Limit  int
	Offset int
}

type UserQueryRepository interface {
	CountVisible(ctx context.Context, f DirectoryFilter) (int, error)
	ListVisible(ctx context.Context, f DirectoryFilter) ([]user.User, error)
}

type PostgresUserQueryRepository struct {
	db database.DB
}

func NewPostgresUserQueryRepository(db database.DB) *PostgresUserQueryRepository {
	return &PostgresUserQueryRepository{db: db}
}

const visibleUsersWhere = `u.is_active AND NOT u.is_banned AND NOT u.is_private`

func (r *PostgresUserQueryRepository) CountVisible(ctx context.Context, f DirectoryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM users u WHERE ` + visibleUsersWhere
	args := []any{}
	query, args = appendSkillFilter(query, args, f)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresUserQueryRepository) ListVisible(ctx context.Context, f DirectoryFilter) ([]user.User, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.bio, u.location,
	                 u.profile_photo, u.availability, u.is_active, u.is_banned, u.is_private,
	                 u.created_at, u.updated_at
	          FROM users u WHERE ` + visibleUsersWhere
	args := []any{}
	query, args = appendSkillFilter(query, args, f)

	query += fmt.Sprintf(" ORDER BY u.created_at ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.Bio, &u.Location,
			&u.ProfilePhoto, &u.Availability, &u.IsActive, &u.IsBanned, &u.IsPrivate,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func appendSkillFilter(query string, args []any, f DirectoryFilter) (string, []any) {
	name := strings.TrimSpace(f.SkillName)
	if name == "" {
		return query, args
	}

	args = append(args, name)
	sub := fmt.Sprintf(`EXISTS (
		SELECT 1 FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = u.id AND lower(s.name) = lower($%d)`, len(args))

	typ := strings.ToLower(strings.TrimSpace(f.SkillType))
	if typ == string(skill.TypeWant) || typ == string(skill.TypeOffer) {
		args = append(args, typ)
		sub += fmt.Sprintf(` AND us.type = $%d`, len(args))
	}
	sub += `)`

	return query + ` AND ` + sub, args
}
