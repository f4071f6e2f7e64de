package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]skill.Skill, error)
	GetByName(ctx context.Context, name string) (skill.Skill, error)
	// Upsert inserts the skill if no case-insensitive match exists and returns
	// the canonical row either way. The bool is true when a new row was created.
	Upsert(ctx context.Context, name string) (skill.Skill, bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) GetByName(ctx context.Context, name string) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM skills WHERE lower(name) = lower($1)`,
		strings.TrimSpace(name),
	)

	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Upsert(ctx context.Context, name string) (skill.Skill, bool, error) {
	return upsertSkill(ctx, r.db, name)
}

type execQuerier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	QueryRow(ctx context.Context, query string, args ...any) database.Row
}

// upsertSkill is a conflict-safe get-or-create: the insert races through the
// unique index on lower(name), and a losing writer falls back to reading the
// row the winner created.
func upsertSkill(ctx context.Context, q execQuerier, name string) (skill.Skill, bool, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO skills (id, name)
		 VALUES ($1, $2)
		 ON CONFLICT ((lower(name))) DO NOTHING
		 RETURNING id, name, created_at`,
		uuid.New(), name,
	)

	var s skill.Skill
	err := row.Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err == nil {
		return s, true, nil
	}
	if err != sql.ErrNoRows && !errors.Is(err, pgx.ErrNoRows) {
		return skill.Skill{}, false, err
	}

	row = q.QueryRow(ctx,
		`SELECT id, name, created_at FROM skills WHERE lower(name) = lower($1)`,
		name,
	)
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
		return skill.Skill{}, false, err
	}
	return s, false, nil
}
