package seeder

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
)

type demoSkill struct {
	Name       string
	Category   string
	Difficulty string
	Location   string
}

var demoSkills = []demoSkill{
	{Name: "Python", Category: "Programming", Difficulty: "Intermediate", Location: "Remote"},
	{Name: "SQL", Category: "Programming", Difficulty: "Beginner", Location: "Remote"},
	{Name: "React", Category: "Programming", Difficulty: "Intermediate", Location: "Remote"},
	{Name: "Data Viz", Category: "Design", Difficulty: "Intermediate"},
	{Name: "UI/UX", Category: "Design", Difficulty: "Beginner"},
	{Name: "Branding", Category: "Design"},
	{Name: "Photography", Category: "Arts", Difficulty: "Beginner"},
	{Name: "Guitar", Category: "Music", Difficulty: "Beginner", Location: "Mumbai"},
	{Name: "Hindi", Category: "Languages", Location: "Mumbai"},
	{Name: "French", Category: "Languages", Difficulty: "Beginner"},
	{Name: "Public Speaking", Category: "Communication"},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "difficulty", "location"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range demoSkills {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name, category, difficulty, location)
			 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
			 ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Category, it.Difficulty, it.Location,
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
