// internal/utils/pagination.go
package utils

import (
	"math"
)

// Pages computes ceil(total/limit), never less than 1 so an empty catalog
// still reports a single (empty) page.
func Pages(total int64, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		return 1
	}
	return pages
}

// Offset converts a 1-based page to a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
