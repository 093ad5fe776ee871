package seeder

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"
)

type demoUser struct {
	Name   string
	Email  string
	Offers []string
	Wants  []string
}

var demoUsers = []demoUser{
	{Name: "Aisha", Email: "a@a.com", Offers: []string{"Python", "Data Viz"}, Wants: []string{"UI/UX", "Branding"}},
	{Name: "Raj", Email: "r@r.com", Offers: []string{"Guitar", "Hindi"}, Wants: []string{"French", "React"}},
	{Name: "Eva", Email: "e@e.com", Offers: []string{"SQL", "UI/UX"}, Wants: []string{"Public Speaking", "Photography"}},
}

// UsersSeeder depends on SkillsSeeder having run first.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "user_skills", "user_id", "skill_id", "relation"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range demoUsers {
		var userID string
		row := tx.QueryRow(ctx,
			`INSERT INTO users (name, email) VALUES ($1, $2)
			 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id::text`,
			u.Name, u.Email,
		)
		if err := row.Scan(&userID); err != nil {
			return fmt.Errorf("user %s: %w", u.Email, err)
		}

		if err := linkSkills(ctx, tx, userID, skill.RelationOffer, u.Offers); err != nil {
			return err
		}
		if err := linkSkills(ctx, tx, userID, skill.RelationWant, u.Wants); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func linkSkills(ctx context.Context, q database.Querier, userID string, rel skill.Relation, names []string) error {
	for _, name := range names {
		_, err := q.Exec(ctx,
			`INSERT INTO user_skills (user_id, skill_id, relation)
			 SELECT $1::uuid, s.id, $3 FROM skills s WHERE s.name = $2
			 ON CONFLICT (user_id, skill_id, relation) DO NOTHING`,
			userID, name, string(rel),
		)
		if err != nil {
			return fmt.Errorf("link %s %s: %w", rel, name, err)
		}
	}
	return nil
}
