package repository

import (
	"context"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"
)

var (
	ErrUserSkillNotFound = errors.New("user skill not found")
	ErrUserSkillExists   = errors.New("user skill already exists")
	ErrUserOrSkillAbsent = errors.New("user or skill does not exist")
)

type UserSkillRepository interface {
	Add(ctx context.Context, us skill.UserSkill) error
	Remove(ctx context.Context, us skill.UserSkill) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) Add(ctx context.Context, us skill.UserSkill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (user_id, skill_id, relation) VALUES ($1, $2, $3)`,
		us.UserID, us.SkillID, string(us.Relation),
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return ErrUserSkillExists
		case isForeignKeyViolation(err):
			return ErrUserOrSkillAbsent
		}
		return err
	}
	return nil
}

func (r *PostgresUserSkillRepository) Remove(ctx context.Context, us skill.UserSkill) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2 AND relation = $3`,
		us.UserID, us.SkillID, string(us.Relation),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}

var (
	_ UserSkillRepository = (*PostgresUserSkillRepository)(nil)
	_ SkillRepository     = (*PostgresSkillRepository)(nil)
	_ UserQueryRepository = (*PostgresUserQueryRepository)(nil)
)
