package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserSkillNotFound = errors.New("user skill not found")

// TagResult reports the outcome of one skill/link upsert pair.
type TagResult struct {
	Skill        skill.Skill
	SkillCreated bool
	Link         skill.UserSkill
	LinkCreated  bool
}

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error)
	FindByUserAndType(ctx context.Context, userID uuid.UUID, typ skill.Type) ([]skill.UserSkill, error)
	// UpsertSkillAndLink runs the skill get-or-create and the (user, skill, type)
	// link upsert inside one transaction: the pair either both land or neither.
	UpsertSkillAndLink(ctx context.Context, userID uuid.UUID, name string, typ skill.Type) (TagResult, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, us.type, us.created_at
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUserSkills(rows)
}

func (r *PostgresUserSkillRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, typ skill.Type) ([]skill.UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, us.type, us.created_at
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1 AND us.type = $2
		 ORDER BY s.name ASC`,
		userID, string(typ),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUserSkills(rows)
}

func (r *PostgresUserSkillRepository) UpsertSkillAndLink(ctx context.Context, userID uuid.UUID, name string, typ skill.Type) (TagResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return TagResult{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	s, skillCreated, err := upsertSkill(ctx, tx, name)
	if err != nil {
		return TagResult{}, err
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, type)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, skill_id, type) DO NOTHING
		 RETURNING id, created_at`,
		uuid.New(), userID, s.ID, string(typ),
	)

	link := skill.UserSkill{
		UserID:    userID,
		SkillID:   s.ID,
		SkillName: s.Name,
		Type:      typ,
	}
	linkCreated := true
	if err := row.Scan(&link.ID, &link.CreatedAt); err != nil {
		if err != sql.ErrNoRows && !errors.Is(err, pgx.ErrNoRows) {
			return TagResult{}, err
		}
		linkCreated = false
		existing := tx.QueryRow(ctx,
			`SELECT id, created_at FROM user_skills WHERE user_id = $1 AND skill_id = $2 AND type = $3`,
			userID, s.ID, string(typ),
		)
		if err := existing.Scan(&link.ID, &link.CreatedAt); err != nil {
			return TagResult{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return TagResult{}, err
	}

	return TagResult{Skill: s, SkillCreated: skillCreated, Link: link, LinkCreated: linkCreated}, nil
}

func scanUserSkills(rows database.Rows) ([]skill.UserSkill, error) {
	out := make([]skill.UserSkill, 0)
	for rows.Next() {
		var us skill.UserSkill
		var typ string
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &typ, &us.CreatedAt); err != nil {
			return nil, err
		}
		us.Type = skill.Type(typ)
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
