package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userSkillColumns = `us.user_id, us.relation, s.id, s.name, s.description, s.category, s.difficulty, s.location, s.created_at`

// PostgresUserDirectory serves users with their offered and wanted skills.
// Used directly it reads outside any transaction; Snapshot pins a
// read-only repeatable-read view for the duration of fn.
type PostgresUserDirectory struct {
	db database.DB
}

func NewPostgresUserDirectory(db database.DB) *PostgresUserDirectory {
	return &PostgresUserDirectory{db: db}
}

func (r *PostgresUserDirectory) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	return queryDirectory{q: r.db}.GetUser(ctx, id)
}

func (r *PostgresUserDirectory) ListUsers(ctx context.Context, excludeID uuid.UUID) ([]user.User, error) {
	return queryDirectory{q: r.db}.ListUsers(ctx, excludeID)
}

func (r *PostgresUserDirectory) Snapshot(ctx context.Context, fn func(ctx context.Context, dir user.Directory) error) error {
	tx, err := r.db.BeginSnapshot(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(ctx, queryDirectory{q: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type queryDirectory struct {
	q database.Querier
}

func (d queryDirectory) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := d.q.QueryRow(ctx, `SELECT id, name, created_at FROM users WHERE id = $1`, id)

	var u user.User
	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	rows, err := d.q.Query(ctx,
		`SELECT `+userSkillColumns+`
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		id,
	)
	if err != nil {
		return user.User{}, err
	}
	defer rows.Close()

	users := []user.User{u}
	if err := attachSkills(rows, users); err != nil {
		return user.User{}, err
	}
	return users[0], nil
}

// ListUsers returns every user except excludeID ordered by signup time, which
// is the enumeration order the ranking keeps among equal scores.
func (d queryDirectory) ListUsers(ctx context.Context, excludeID uuid.UUID) ([]user.User, error) {
	rows, err := d.q.Query(ctx,
		`SELECT id, name, created_at
		 FROM users
		 WHERE id <> $1
		 ORDER BY created_at ASC, id ASC`,
		excludeID,
	)
	if err != nil {
		return nil, err
	}

	out := make([]user.User, 0)
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skillRows, err := d.q.Query(ctx,
		`SELECT `+userSkillColumns+`
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id <> $1
		 ORDER BY us.user_id ASC, s.name ASC`,
		excludeID,
	)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	if err := attachSkills(skillRows, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachSkills scans user_skills rows and appends each skill to the matching
// user in users. Rows for users not present are ignored.
func attachSkills(rows database.Rows, users []user.User) error {
	idx := make(map[uuid.UUID]int, len(users))
	for i := range users {
		idx[users[i].ID] = i
	}

	for rows.Next() {
		var (
			userID uuid.UUID
			rel    string
			s      skill.Skill
		)
		if err := rows.Scan(&userID, &rel, &s.ID, &s.Name, &s.Description, &s.Category, &s.Difficulty, &s.Location, &s.CreatedAt); err != nil {
			return err
		}

		i, ok := idx[userID]
		if !ok {
			continue
		}
		switch skill.Relation(rel) {
		case skill.RelationOffer:
			users[i].Offered = append(users[i].Offered, s)
		case skill.RelationWant:
			users[i].Wanted = append(users[i].Wanted, s)
		}
	}
	return rows.Err()
}

var (
	_ user.Directory         = (*PostgresUserDirectory)(nil)
	_ user.SnapshotDirectory = (*PostgresUserDirectory)(nil)
)
