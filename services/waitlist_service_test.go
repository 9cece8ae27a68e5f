package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waitlist-simple/dto"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "jane@example.com", NormalizeEmail("jane@example.com"))
}

func TestNormalizeFilter_Defaults(t *testing.T) {
	got := normalizeFilter(dto.WaitlistFilter{ProjectID: "p1"})

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, "createdAt", got.SortBy)
	assert.Equal(t, "desc", got.SortOrder)
}

func TestNormalizeFilter_Bounds(t *testing.T) {
	got := normalizeFilter(dto.WaitlistFilter{
		Page:      -3,
		Limit:     1000,
		SortBy:    "apiToken",
		SortOrder: "sideways",
		Search:    "  jane  ",
	})

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 100, got.Limit)
	assert.Equal(t, "createdAt", got.SortBy)
	assert.Equal(t, "desc", got.SortOrder)
	assert.Equal(t, "jane", got.Search)
}

func TestNormalizeFilter_ValidValuesKept(t *testing.T) {
	got := normalizeFilter(dto.WaitlistFilter{
		Page:      3,
		Limit:     25,
		SortBy:    "email",
		SortOrder: "asc",
	})

	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 25, got.Limit)
	assert.Equal(t, "email", got.SortBy)
	assert.Equal(t, "asc", got.SortOrder)
}

func TestBuildPaginationMeta(t *testing.T) {
	// 15 entries at limit 10: page 2 holds the trailing 5
	meta := buildPaginationMeta(2, 10, 15)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, int64(15), meta.TotalCount)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}

func TestBuildPaginationMeta_FirstPage(t *testing.T) {
	meta := buildPaginationMeta(1, 10, 15)

	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}

func TestBuildPaginationMeta_Empty(t *testing.T) {
	meta := buildPaginationMeta(1, 10, 0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.Equal(t, int64(0), meta.TotalCount)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}

func TestBuildPaginationMeta_ExactMultiple(t *testing.T) {
	meta := buildPaginationMeta(2, 10, 20)

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
}
