package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows replays canned rows; each row is assigned to Scan destinations by
// position.
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.data)
}
func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.pos-1], dest)
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.vals, dest)
}

func assign(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
			} else {
				s := v.(string)
				*d = &s
			}
		case *time.Time:
			*d = v.(time.Time)
		default:
			return errors.New("unsupported scan destination")
		}
	}
	return nil
}

// fakeQuerier routes queries by a substring of the SQL text.
type fakeQuerier struct {
	row      fakeRow
	rows     map[string]*fakeRows
	queryErr error
}

func (f *fakeQuerier) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (f *fakeQuerier) QueryRow(context.Context, string, ...any) database.Row {
	return f.row
}
func (f *fakeQuerier) Query(_ context.Context, q string, _ ...any) (database.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	for key, rows := range f.rows {
		if strings.Contains(q, key) {
			return rows, nil
		}
	}
	return &fakeRows{}, nil
}

type fakeTx struct {
	*fakeQuerier
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

type fakeDB struct {
	*fakeQuerier
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) SQLDB() *sql.DB             { return nil }
func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	return d.tx, d.beginErr
}
func (d *fakeDB) BeginSnapshot(context.Context) (database.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func skillRow(userID uuid.UUID, rel, name string, location any) []any {
	return []any{userID, rel, uuid.New(), name, nil, nil, nil, location, time.Now()}
}

func TestAttachSkills_GroupsByUserAndRelation(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	users := []user.User{{ID: a}, {ID: b}}

	rows := &fakeRows{data: [][]any{
		skillRow(a, "offer", "Go", "Remote"),
		skillRow(a, "want", "Rust", nil),
		skillRow(b, "offer", "SQL", nil),
		skillRow(uuid.New(), "offer", "Ignored", nil),
	}}

	require.NoError(t, attachSkills(rows, users))
	require.Len(t, users[0].Offered, 1)
	require.Len(t, users[0].Wanted, 1)
	assert.Equal(t, "Go", users[0].Offered[0].Name)
	require.NotNil(t, users[0].Offered[0].Location)
	assert.Equal(t, "Remote", *users[0].Offered[0].Location)
	assert.Nil(t, users[0].Wanted[0].Location)
	assert.Equal(t, "SQL", users[1].Offered[0].Name)
	assert.Empty(t, users[1].Wanted)
}

func TestGetUser_NotFound(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := queryDirectory{q: q}.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestGetUser_PropagatesErrors(t *testing.T) {
	boom := errors.New("connection reset")
	q := &fakeQuerier{row: fakeRow{err: boom}}
	_, err := queryDirectory{q: q}.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestGetUser_LoadsSkills(t *testing.T) {
	id := uuid.New()
	q := &fakeQuerier{
		row: fakeRow{vals: []any{id, "Aisha", time.Now()}},
		rows: map[string]*fakeRows{
			"WHERE us.user_id = $1": {data: [][]any{skillRow(id, "offer", "Python", nil)}},
		},
	}

	u, err := queryDirectory{q: q}.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Aisha", u.Name)
	require.Len(t, u.Offered, 1)
	assert.Equal(t, "Python", u.Offered[0].Name)
}

func TestListUsers_KeepsEnumerationOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	q := &fakeQuerier{rows: map[string]*fakeRows{
		"FROM users": {data: [][]any{
			{a, "Raj", time.Now()},
			{b, "Eva", time.Now()},
		}},
		"WHERE us.user_id <> $1": {data: [][]any{
			skillRow(b, "want", "Photography", nil),
			skillRow(a, "offer", "Guitar", "Mumbai"),
		}},
	}}

	users, err := queryDirectory{q: q}.ListUsers(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Raj", users[0].Name)
	assert.Equal(t, "Guitar", users[0].Offered[0].Name)
	assert.Equal(t, "Eva", users[1].Name)
	assert.Equal(t, "Photography", users[1].Wanted[0].Name)
}

func TestSnapshot_CommitsOnSuccess(t *testing.T) {
	q := &fakeQuerier{}
	db := &fakeDB{fakeQuerier: q, tx: &fakeTx{fakeQuerier: q}}
	dir := NewPostgresUserDirectory(db)

	called := false
	err := dir.Snapshot(context.Background(), func(ctx context.Context, d user.Directory) error {
		called = true
		_, err := d.ListUsers(ctx, uuid.New())
		return err
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, db.tx.committed)
}

func TestSnapshot_RollsBackOnError(t *testing.T) {
	q := &fakeQuerier{}
	db := &fakeDB{fakeQuerier: q, tx: &fakeTx{fakeQuerier: q}}
	dir := NewPostgresUserDirectory(db)

	boom := errors.New("boom")
	err := dir.Snapshot(context.Background(), func(context.Context, user.Directory) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestSnapshot_BeginError(t *testing.T) {
	boom := errors.New("pool closed")
	db := &fakeDB{fakeQuerier: &fakeQuerier{}, beginErr: boom}

	err := NewPostgresUserDirectory(db).Snapshot(context.Background(), func(context.Context, user.Directory) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.ErrorIs(t, err, boom)
}
