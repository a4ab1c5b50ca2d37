package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	query := "SELECT * FROM t WHERE a = ? AND b = ? AND c = ?"

	tests := []struct {
		dialect string
		want    string
	}{
		{"sqlite", "SELECT * FROM t WHERE a = ?1 AND b = ?2 AND c = ?3"},
		{"postgres", "SELECT * FROM t WHERE a = $1 AND b = $2 AND c = $3"},
		{"mysql", query},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			got, n := rebind(tt.dialect, query)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 3, n)
		})
	}
}

func TestRebind_NoPlaceholders(t *testing.T) {
	got, n := rebind("sqlite", "SELECT COUNT(*) FROM users")
	assert.Equal(t, "SELECT COUNT(*) FROM users", got)
	assert.Zero(t, n)
}

func TestRebind_LiteralQuestionMarkIsAPlaceholder(t *testing.T) {
	got, n := rebind("sqlite", "SELECT '?' WHERE x = ?")
	assert.Equal(t, "SELECT '?1' WHERE x = ?2", got)
	assert.Equal(t, 2, n)
}

func TestStatement_RunReturnsLastInsertID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	insert := s.Prepare("INSERT INTO products (name, calories, protein, carbs, fats, fiber, portion_size, is_default) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")

	id1, err := insert.Run(ctx, "Oats", 389.0, 17.0, 66.0, 7.0, 11.0, "100g", true)
	require.NoError(t, err)
	id2, err := insert.Run(ctx, "Rice", 130.0, 2.7, 28.0, 0.3, 0.4, "100g", true)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
}

func TestStatement_GetBindsInSourceOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	insert := s.Prepare("INSERT INTO products (name, calories, is_default) VALUES (?, ?, ?)")
	_, err := insert.Run(ctx, "Apple", 52.0, true)
	require.NoError(t, err)
	_, err = insert.Run(ctx, "Pear", 57.0, true)
	require.NoError(t, err)

	row, err := s.Prepare("SELECT name, calories FROM products WHERE calories > ? AND name = ?").Get(ctx, 55.0, "Pear")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Pear", row.String("name"))
	assert.InDelta(t, 57.0, row.Float("calories"), 1e-9)
}

func TestStatement_GetNoRow(t *testing.T) {
	s := createTestStore(t)

	row, err := s.Prepare("SELECT id FROM users WHERE email = ?").Get(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestStatement_AllEmpty(t *testing.T) {
	s := createTestStore(t)

	rows, err := s.Prepare("SELECT id FROM meal_entries WHERE user_id = ?").All(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestStatement_AllPreservesOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	insert := s.Prepare("INSERT INTO products (name, calories, is_default) VALUES (?, ?, ?)")
	for _, name := range []string{"c", "a", "b"} {
		_, err := insert.Run(ctx, name, 1.0, true)
		require.NoError(t, err)
	}

	rows, err := s.Prepare("SELECT name FROM products ORDER BY name").All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].String("name"))
	assert.Equal(t, "b", rows[1].String("name"))
	assert.Equal(t, "c", rows[2].String("name"))
}

func TestStatement_ArgCountMismatch(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Prepare("SELECT id FROM users WHERE id = ?").Get(context.Background())
	assert.ErrorIs(t, err, ErrArgCount)

	_, err = s.Prepare("DELETE FROM users WHERE id = ?").Run(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrArgCount)
}

func TestRow_NullCoercesToZero(t *testing.T) {
	s := createTestStore(t)

	row, err := s.Prepare("SELECT SUM(calories) AS total FROM products").Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Nil(t, row["total"])
	assert.Zero(t, row.Float("total"))
	assert.Zero(t, row.Int("missing"))
	assert.Empty(t, row.String("missing"))
}
