package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, username, password_hash, first_name, last_name, bio, location,
	profile_photo, availability, is_active, is_banned, is_private, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, first_name, last_name, availability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Availability,
	)
	if err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users
		 SET first_name = $1, last_name = $2, bio = $3, location = $4,
		     profile_photo = $5, availability = $6, updated_at = now()
		 WHERE id = $7
		 RETURNING `+userColumns,
		u.FirstName, u.LastName, u.Bio, u.Location, u.ProfilePhoto, u.Availability, u.ID,
	)
	return scanUser(row)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Bio, &u.Location,
		&u.ProfilePhoto, &u.Availability,
		&u.IsActive, &u.IsBanned, &u.IsPrivate,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return user.ErrEmailTaken
	case strings.Contains(pgErr.ConstraintName, "username"):
		return user.ErrUsernameTaken
	default:
		return err
	}
}
