package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "visitor_created_at",
		"name":       "visitor_name",
	}

	p := Params{SortBy: "name", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "visitor_name ASC", clause)

	// unknown keys fall back to the default instead of reaching SQL
	p = Params{SortBy: "visitor_name; DROP TABLE visitors", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "visitor_created_at DESC", clause)

	p = Params{SortOrder: "sideways"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "visitor_created_at DESC", clause)

	_, err = Params{SortBy: "nope"}.SafeOrderClause(allowed, "also_nope")
	assert.Error(t, err)
}

func TestOffsetAndLimit(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 50, p.Offset())

	p = Params{Page: 1, PerPage: 10}
	assert.Equal(t, 0, p.Offset())
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(101, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 5, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)

	m = BuildMeta(10, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 1, m.TotalPages)
	assert.False(t, m.HasNext)
}
