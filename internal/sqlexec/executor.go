// Package sqlexec runs parameterized SQL statements and materializes
// results in the three shapes the menu workflows need: printed table,
// string rows, or a bare row count.
package sqlexec

import (
	"context"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx satisfied by both *pgxpool.Pool and
// pgx.Tx, so the same executor shapes run inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Executor issues one statement per call. No statement is prepared or
// reused across calls; the workload is interactive and single-user.
type Executor struct {
	DB  Querier
	Out io.Writer
}

func New(db Querier, out io.Writer) *Executor {
	return &Executor{DB: db, Out: out}
}

// Execute runs a statement that returns no rows (INSERT, UPDATE,
// CREATE, DROP).
func (e *Executor) Execute(ctx context.Context, sql string, args ...any) error {
	if _, err := e.DB.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

// QueryPrint runs a read query and writes the result to Out: one
// tab-separated header of column names, then every row with stringified
// tab-separated values. Returns the number of rows printed. The header
// is only written when at least one row came back.
func (e *Executor) QueryPrint(ctx context.Context, sql string, args ...any) (int, error) {
	rows, err := e.DB.Query(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	count := 0
	header := false
	for rows.Next() {
		if !header {
			fds := rows.FieldDescriptions()
			cols := make([]string, len(fds))
			for i, fd := range fds {
				cols[i] = fd.Name
			}
			fmt.Fprintln(e.Out, strings.Join(cols, "\t"))
			header = true
		}
		vals, err := rows.Values()
		if err != nil {
			return count, fmt.Errorf("read row: %w", err)
		}
		fmt.Fprintln(e.Out, strings.Join(stringify(vals), "\t"))
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("query: %w", err)
	}
	return count, nil
}

// QueryRows runs a read query and returns every row as ordered string
// fields. No header row, nothing written to Out.
func (e *Executor) QueryRows(ctx context.Context, sql string, args ...any) ([][]string, error) {
	rows, err := e.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		out = append(out, stringify(vals))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return out, nil
}

// QueryCount runs a read query and returns only the number of rows it
// produced.
func (e *Executor) QueryCount(ctx context.Context, sql string, args ...any) (int, error) {
	rows, err := e.DB.Query(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("query: %w", err)
	}
	return count, nil
}

// stringify renders driver values for tab-separated output. NULL
// renders as the empty string.
func stringify(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = render(v)
	}
	return out
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil || dv == nil {
			return ""
		}
		return render(dv)
	default:
		return fmt.Sprint(v)
	}
}
