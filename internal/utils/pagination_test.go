// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages(t *testing.T) {
	assert.Equal(t, 1, Pages(0, 24))
	assert.Equal(t, 1, Pages(24, 24))
	assert.Equal(t, 2, Pages(25, 24))
	assert.Equal(t, 5, Pages(100, 24))
	assert.Equal(t, 1, Pages(10, 0))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 24))
	assert.Equal(t, 24, Offset(2, 24))
	assert.Equal(t, 48, Offset(3, 24))
	assert.Equal(t, 0, Offset(0, 24))
}
