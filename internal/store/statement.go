package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrArgCount is returned when a statement is executed with a number of
// arguments that differs from its placeholder count.
var ErrArgCount = errors.New("argument count does not match placeholders")

// Row is one result row keyed by column name.
// Driver byte slices are converted to strings; NULL is nil.
type Row map[string]any

// Float returns col as float64. NULL and missing columns yield 0.
func (r Row) Float(col string) float64 {
	return cast.ToFloat64(r[col])
}

// Int returns col as int64. NULL and missing columns yield 0.
func (r Row) Int(col string) int64 {
	return cast.ToInt64(r[col])
}

// String returns col as a string. NULL and missing columns yield "".
func (r Row) String(col string) string {
	return cast.ToString(r[col])
}

// Statement is a query prepared for positional binding.
//
// Every ? in the query text is a placeholder, bound in source order to the
// call arguments. The text is not parsed, so a literal ? inside a string
// literal or comment is treated as a placeholder too and must not be used.
type Statement struct {
	store  *Store
	query  string
	params int
}

// Prepare rewrites the ? placeholders of query for the store's dialect.
func (s *Store) Prepare(query string) *Statement {
	rebound, n := rebind(s.dialect, query)
	return &Statement{store: s, query: rebound, params: n}
}

// Query returns the dialect-specific SQL text.
func (st *Statement) Query() string {
	return st.query
}

// Get returns the first row, or nil when nothing matches.
func (st *Statement) Get(ctx context.Context, args ...any) (Row, error) {
	rows, err := st.query0(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// All returns every row in result order. The slice is empty, not nil, when nothing matches.
func (st *Statement) All(ctx context.Context, args ...any) ([]Row, error) {
	return st.query0(ctx, args, 0)
}

// Run executes the statement for its side effect under the writer lock and
// returns the id of the last inserted row. The id is only meaningful after an
// INSERT; drivers that cannot report it yield 0 without error.
func (st *Statement) Run(ctx context.Context, args ...any) (int64, error) {
	if err := st.checkArgs(args); err != nil {
		return 0, err
	}

	st.store.writeMu.Lock()
	defer st.store.writeMu.Unlock()

	res, err := st.store.sqlDB.ExecContext(ctx, st.query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil
	}
	return id, nil
}

// query0 reads at most limit rows; limit 0 reads all.
func (st *Statement) query0(ctx context.Context, args []any, limit int) ([]Row, error) {
	if err := st.checkArgs(args); err != nil {
		return nil, err
	}

	rows, err := st.store.sqlDB.QueryContext(ctx, st.query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)

		if limit > 0 && len(out) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return out, nil
}

func (st *Statement) checkArgs(args []any) error {
	if len(args) != st.params {
		return fmt.Errorf("%w: query has %d, got %d", ErrArgCount, st.params, len(args))
	}
	return nil
}

// rebind numbers the placeholders of query for dialect and returns the
// rewritten text with the placeholder count.
func rebind(dialect, query string) (string, int) {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		if c != '?' {
			b.WriteByte(c)
			continue
		}
		n++
		switch dialect {
		case "postgres":
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		case "mysql":
			b.WriteByte('?')
		default:
			b.WriteByte('?')
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String(), n
}
