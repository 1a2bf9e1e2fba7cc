// internal/models/review_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeReviewAggregate(t *testing.T) {
	reviews := []Review{
		{Rating: 5},
		{Rating: 3},
		{Rating: 4},
	}

	agg := ComputeReviewAggregate(reviews)

	assert.Equal(t, 3, agg.Count)
	assert.Equal(t, 4.0, agg.Avg)
}

func TestComputeReviewAggregateKeepsPrecision(t *testing.T) {
	reviews := []Review{
		{Rating: 5},
		{Rating: 4},
	}

	agg := ComputeReviewAggregate(reviews)

	assert.Equal(t, 4.5, agg.Avg)
}

func TestComputeReviewAggregateEmpty(t *testing.T) {
	agg := ComputeReviewAggregate(nil)

	assert.Equal(t, 0, agg.Count)
	assert.Equal(t, 0.0, agg.Avg)
}
