package seeder

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
)

// SkillsSeeder fills the catalog with a starter set so fresh installs
// have something to propose swaps against.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Guitar",
		"Piano",
		"Photography",
		"Cooking",
		"Baking",
		"Spanish",
		"French",
		"Yoga",
		"Web Development",
		"Graphic Design",
		"Public Speaking",
		"Creative Writing",
		"Gardening",
		"Chess",
		"Video Editing",
	}

	for _, name := range names {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name) VALUES ($1, $2) ON CONFLICT ((lower(name))) DO NOTHING`,
			uuid.New(),
			skill.NormalizeName(name),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
