package repository

import (
	"context"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrSkillNameTaken = errors.New("skill name already exists")

type SkillRepository interface {
	SearchSkills(ctx context.Context, query string, limit int) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// SearchSkills matches query against name, category and location,
// case-insensitively. An empty query lists everything.
func (r *PostgresSkillRepository) SearchSkills(ctx context.Context, query string, limit int) ([]skill.Skill, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, category, difficulty, location, created_at
		 FROM skills
		 WHERE $1 = ''
		    OR name ILIKE '%' || $1 || '%'
		    OR category ILIKE '%' || $1 || '%'
		    OR location ILIKE '%' || $1 || '%'
		 ORDER BY name ASC
		 LIMIT $2`,
		query, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.Difficulty, &s.Location, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, description, category, difficulty, location)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		s.ID, s.Name, s.Description, s.Category, s.Difficulty, s.Location,
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return skill.Skill{}, ErrSkillNameTaken
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
