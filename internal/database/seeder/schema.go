package seeder

import (
	"context"
	"fmt"
	"strings"

	"skill-swap/internal/database"
)

// EnsureTableColumns fails when table lacks any of columns, so seeders do not
// run against a schema the migrations have not produced yet.
func EnsureTableColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := q.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if missing := missingColumns(existing, columns); len(missing) > 0 {
		return fmt.Errorf("schema mismatch: table %s missing columns %s", table, strings.Join(missing, ", "))
	}
	return nil
}

func missingColumns(existing map[string]struct{}, want []string) []string {
	var out []string
	for _, col := range want {
		if _, ok := existing[col]; !ok {
			out = append(out, col)
		}
	}
	return out
}
