// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_product_author"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_author"`
	// Alias is a snapshot of the author's alias at submission time.
	Alias  string `json:"alias" gorm:"size:50;not null"`
	Rating int    `json:"rating" gorm:"not null"`
	Text   string `json:"text" gorm:"type:text"`
}

// ReviewAggregate is derived, never stored.
type ReviewAggregate struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
}

// ComputeReviewAggregate recomputes count and mean rating over the full
// review set. Avg keeps full precision and is 0 when the set is empty.
func ComputeReviewAggregate(reviews []Review) ReviewAggregate {
	if len(reviews) == 0 {
		return ReviewAggregate{}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return ReviewAggregate{
		Count: len(reviews),
		Avg:   float64(sum) / float64(len(reviews)),
	}
}
