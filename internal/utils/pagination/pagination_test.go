package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	// Standard values pass through untouched
	page, pageSize := Normalize(3, 20, 15)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, pageSize)

	// Non-positive page clamps to 1
	page, _ = Normalize(0, 20, 15)
	assert.Equal(t, 1, page)
	page, _ = Normalize(-7, 20, 15)
	assert.Equal(t, 1, page)

	// Non-positive page size falls back to the default
	_, pageSize = Normalize(1, 0, 15)
	assert.Equal(t, 15, pageSize)
	_, pageSize = Normalize(1, -5, 15)
	assert.Equal(t, 15, pageSize)

	// Oversized page size falls back to the default too
	_, pageSize = Normalize(1, maxPageSize+1, 15)
	assert.Equal(t, 15, pageSize)
	_, pageSize = Normalize(1, maxPageSize, 15)
	assert.Equal(t, maxPageSize, pageSize, "The cap itself is still allowed")
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 15), "First page starts at row zero")
	assert.Equal(t, 15, Offset(2, 15))
	assert.Equal(t, 40, Offset(5, 10))
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 15), "An empty set still has one page")
	assert.Equal(t, 1, LastPage(15, 15))
	assert.Equal(t, 2, LastPage(16, 15))
	assert.Equal(t, 3, LastPage(25, 10))
	assert.Equal(t, 1, LastPage(-1, 15))
}
