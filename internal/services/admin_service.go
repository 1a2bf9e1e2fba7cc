// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/models"
	"github.com/hearthmade/storefront-backend/internal/utils"
)

// AdminService owns the full product lifecycle, published or not. Every
// write invalidates cached catalog pages so shoppers never see a stale edit.
type AdminService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewAdminService(db *gorm.DB, catalog *CatalogService) *AdminService {
	return &AdminService{
		db:      db,
		catalog: catalog,
	}
}

// ProductDraft is the create payload. Transparency always starts zeroed and
// is filled in through patches afterwards.
type ProductDraft struct {
	Slug        string   `json:"slug" validate:"required,slug"`
	Title       string   `json:"title" validate:"required,max=200"`
	Subtitle    string   `json:"subtitle" validate:"max=200"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"min=0"`
	Inventory   int      `json:"inventory" validate:"min=0"`
	InStock     bool     `json:"inStock"`
	Published   bool     `json:"published"`
	HeroImage   string   `json:"heroImage" validate:"max=500"`
	Tags        []string `json:"tags"`
	Details     []string `json:"details"`
}

func (s *AdminService) ListAll() ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Order("created_at DESC, id ASC").Find(&products).Error; err != nil {
		return nil, apperrors.Upstream("failed to fetch products: %v", err)
	}
	return products, nil
}

func (s *AdminService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Upstream("database error: %v", err)
	}
	return &product, nil
}

func (s *AdminService) Create(draft *ProductDraft) (*models.Product, error) {
	if err := utils.ValidateStruct(draft); err != nil {
		return nil, apperrors.Validation("%s", utils.FirstValidationMessage(err))
	}

	if !models.IsValidCategory(models.Category(draft.Category)) {
		return nil, apperrors.Validation("unknown category: %s", draft.Category)
	}

	if err := s.requireSlugFree(draft.Slug, uuid.Nil); err != nil {
		return nil, err
	}

	product := models.Product{
		Slug:        draft.Slug,
		Title:       draft.Title,
		Subtitle:    draft.Subtitle,
		Description: draft.Description,
		Category:    models.Category(draft.Category),
		Price:       draft.Price,
		Inventory:   draft.Inventory,
		InStock:     draft.InStock,
		Published:   draft.Published,
		HeroImage:   draft.HeroImage,
		Tags:        pq.StringArray(draft.Tags),
		Details:     pq.StringArray(draft.Details),
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, apperrors.Upstream("failed to create product: %v", err)
	}

	s.catalog.InvalidateCatalogCache()
	return &product, nil
}

// Patch applies a partial update. Absent keys are left untouched; present
// keys are validated and coerced up front, and either every change lands in
// a single update or none of them do.
func (s *AdminService) Patch(id uuid.UUID, patch map[string]interface{}) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates, err := buildProductUpdates(product, patch)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return product, nil
	}

	if slug, ok := updates["slug"].(string); ok && slug != product.Slug {
		if err := s.requireSlugFree(slug, product.ID); err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, apperrors.Upstream("failed to update product: %v", err)
	}

	if err := s.db.First(product, "id = ?", id).Error; err != nil {
		return nil, apperrors.Upstream("failed to reload product: %v", err)
	}

	s.catalog.InvalidateCatalogCache()
	return product, nil
}

func (s *AdminService) Delete(id uuid.UUID) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(product).Error; err != nil {
		return apperrors.Upstream("failed to delete product: %v", err)
	}

	s.catalog.InvalidateCatalogCache()
	return nil
}

func (s *AdminService) requireSlugFree(slug string, selfID uuid.UUID) error {
	var count int64
	query := s.db.Model(&models.Product{}).Where("slug = ?", slug)
	if selfID != uuid.Nil {
		query = query.Where("id != ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Upstream("database error: %v", err)
	}
	if count > 0 {
		return apperrors.Conflict("a product with slug %q already exists", slug)
	}
	return nil
}

// buildProductUpdates translates a raw patch body into column updates.
// Validation and coercion happen here, before anything touches the store, so
// a bad field rejects the whole patch. Unknown keys are rejected rather than
// silently dropped.
func buildProductUpdates(existing *models.Product, patch map[string]interface{}) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	for key, raw := range patch {
		switch key {
		case "title":
			v, err := requireString(key, raw)
			if err != nil {
				return nil, err
			}
			if v == "" {
				return nil, apperrors.Validation("title must not be empty")
			}
			updates["title"] = v
		case "subtitle":
			v, err := requireString(key, raw)
			if err != nil {
				return nil, err
			}
			updates["subtitle"] = v
		case "description":
			v, err := requireString(key, raw)
			if err != nil {
				return nil, err
			}
			updates["description"] = v
		case "slug":
			v, err := requireString(key, raw)
			if err != nil {
				return nil, err
			}
			if !utils.IsValidSlug(v) {
				return nil, apperrors.Validation("slug may only contain lowercase letters, digits and dashes")
			}
			updates["slug"] = v
		case "category":
			v, err := requireString(key, raw)
			if err != nil {
				return nil, err
			}
			if !models.IsValidCategory(models.Category(v)) {
				return nil, apperrors.Validation("unknown category: %s", v)
			}
			updates["category"] = v
		case "heroImage":
			v, err := requireString(key, raw)
			if err != nil {
				return nil, err
			}
			updates["hero_image"] = v
		case "price":
			v, err := models.CoerceDecimal(key, raw)
			if err != nil {
				return nil, apperrors.Validation("%s", err.Error())
			}
			if v < 0 {
				return nil, apperrors.Validation("price must not be negative")
			}
			updates["price"] = v
		case "inventory":
			v, err := models.CoerceInt(key, raw)
			if err != nil {
				return nil, apperrors.Validation("%s", err.Error())
			}
			if v < 0 {
				return nil, apperrors.Validation("inventory must not be negative")
			}
			updates["inventory"] = v
		case "inStock":
			v, err := models.CoerceBool(key, raw)
			if err != nil {
				return nil, apperrors.Validation("%s", err.Error())
			}
			updates["in_stock"] = v
		case "published":
			v, err := models.CoerceBool(key, raw)
			if err != nil {
				return nil, apperrors.Validation("%s", err.Error())
			}
			updates["published"] = v
		case "tags":
			v, err := requireStringSlice(key, raw)
			if err != nil {
				return nil, err
			}
			updates["tags"] = pq.StringArray(v)
		case "details":
			v, err := requireStringSlice(key, raw)
			if err != nil {
				return nil, err
			}
			updates["details"] = pq.StringArray(v)
		case "transparency":
			sub, ok := raw.(map[string]interface{})
			if !ok {
				return nil, apperrors.Validation("transparency must be an object")
			}
			merged, err := models.MergeTransparency(existing.Transparency, sub)
			if err != nil {
				return nil, apperrors.Validation("%s", err.Error())
			}
			updates["transparency"] = merged
		default:
			return nil, apperrors.Validation("unknown field: %s", key)
		}
	}

	return updates, nil
}

func requireString(field string, raw interface{}) (string, error) {
	v, ok := raw.(string)
	if !ok {
		return "", apperrors.Validation("%s must be a string", field)
	}
	return v, nil
}

func requireStringSlice(field string, raw interface{}) ([]string, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, apperrors.Validation("%s must be an array of strings", field)
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, apperrors.Validation(fmt.Sprintf("%s[%d] must be a string", field, i))
		}
		out = append(out, s)
	}
	return out, nil
}
