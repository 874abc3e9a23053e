// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "created_at",
		"email":      "email",
	}

	p := Params{SortBy: "email", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY email ASC", clause)

	// Unknown keys fall back to the default column instead of reaching SQL.
	p = Params{SortBy: "password; DROP TABLE users", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY created_at DESC", clause)

	_, err = Params{}.SafeOrderClause(map[string]string{}, "missing")
	assert.Error(t, err)
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
