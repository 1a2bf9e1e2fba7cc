// internal/services/review_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// List returns a product's reviews newest first together with their
// aggregate. Unpublished products report not found, same as the catalog.
func (s *ReviewService) List(productID uuid.UUID) ([]models.Review, models.ReviewAggregate, error) {
	if err := s.requirePublished(productID); err != nil {
		return nil, models.ReviewAggregate{}, err
	}

	reviews := []models.Review{}
	if err := s.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, models.ReviewAggregate{}, apperrors.Upstream("failed to fetch reviews: %v", err)
	}

	return reviews, models.ComputeReviewAggregate(reviews), nil
}

// Submit records one review per author per product. The alias is snapshotted
// from the author's profile at submission time.
func (s *ReviewService) Submit(productID, authorID uuid.UUID, rating int, text string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}

	if err := s.requirePublished(productID); err != nil {
		return nil, err
	}

	var existing models.Review
	err := s.db.Where("product_id = ? AND author_id = ?", productID, authorID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("you have already reviewed this product")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Upstream("database error: %v", err)
	}

	// Snapshot the author's current alias from the store. The token claim
	// is minted at issuance and may predate a rename.
	var author models.User
	if err := s.db.Select("alias").First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("profile not found")
		}
		return nil, apperrors.Upstream("database error: %v", err)
	}

	review := models.Review{
		ProductID: productID,
		AuthorID:  authorID,
		Alias:     author.Alias,
		Rating:    rating,
		Text:      text,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, apperrors.Upstream("failed to create review: %v", err)
	}

	return &review, nil
}

func (s *ReviewService) requirePublished(productID uuid.UUID) error {
	var product models.Product
	err := s.db.Select("id").
		Where("id = ? AND published = ?", productID, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("product not found")
		}
		return apperrors.Upstream("database error: %v", err)
	}
	return nil
}
