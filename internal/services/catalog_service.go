// internal/services/catalog_service.go
package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/catalog"
	"github.com/hearthmade/storefront-backend/internal/models"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

// CatalogService executes catalog queries against the product store. Only
// published products are ever reachable through it.
type CatalogService struct {
	db    *gorm.DB
	cache *CacheService
}

type CatalogResult struct {
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Pages int              `json:"pages"`
}

func NewCatalogService(db *gorm.DB, cache *CacheService) *CatalogService {
	return &CatalogService{
		db:    db,
		cache: cache,
	}
}

// Execute runs q and returns one result page. The query is validated before
// anything touches the store; an out-of-range page returns an empty item
// list with the true total and page count rather than redirecting.
func (s *CatalogService) Execute(q catalog.Query) (*CatalogResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cacheKey := q.CacheKey()
	var cached CatalogResult
	if s.cache.GetJSON(cacheKey, &cached) {
		return &cached, nil
	}

	query := s.applyFilters(s.db.Model(&models.Product{}), q)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Upstream("failed to count products: %v", err)
	}

	query = query.Order(orderClause(q.Sort)).
		Offset(utils.Offset(q.Page, q.Limit)).
		Limit(q.Limit)

	items := []models.Product{}
	if err := query.Find(&items).Error; err != nil {
		return nil, apperrors.Upstream("failed to fetch products: %v", err)
	}

	result := &CatalogResult{
		Items: items,
		Total: total,
		Page:  q.Page,
		Pages: utils.Pages(total, q.Limit),
	}

	s.cache.SetJSON(cacheKey, result)
	return result, nil
}

// GetBySlug returns one published product for the public detail page.
func (s *CatalogService) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("slug = ? AND published = ?", slug, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Upstream("database error: %v", err)
	}
	return &product, nil
}

func (s *CatalogService) applyFilters(query *gorm.DB, q catalog.Query) *gorm.DB {
	// Hard invariant: unpublished products are admin-only.
	query = query.Where("published = ?", true)

	if q.Q != "" {
		term := "%" + escapeLike(strings.ToLower(q.Q)) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(subtitle) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term,
		)
	}

	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}

	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}

	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}

	if q.InStock != nil {
		// Matches the stored flag, never derived from inventory.
		query = query.Where("in_stock = ?", *q.InStock)
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes LIKE wildcards so a search term like "100%" matches the
// literal substring instead of acting as a pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// orderClause maps a sort mode to its SQL ordering. Ties always break on id
// ascending so identical queries return identical orderings.
func orderClause(sort string) string {
	switch sort {
	case catalog.SortOld:
		return "created_at ASC, id ASC"
	case catalog.SortPriceAsc:
		return "price ASC, id ASC"
	case catalog.SortPriceDesc:
		return "price DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// InvalidateCatalogCache drops every cached catalog page. Best effort: a
// cache failure is logged, not surfaced, because the store already holds
// the truth.
func (s *CatalogService) InvalidateCatalogCache() {
	if err := s.cache.InvalidatePrefix("catalog:"); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate catalog cache")
	}
}
