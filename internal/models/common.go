// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Category is the fixed product category enumeration.
type Category string

const (
	CategoryCrochet   Category = "crochet"
	CategoryBeanie    Category = "beanie"
	CategoryBlanket   Category = "blanket"
	CategoryCandle    Category = "candle"
	CategoryDiffuser  Category = "diffuser"
	CategorySoap      Category = "soap"
	CategoryFragrance Category = "fragrance"
	CategoryPainting  Category = "painting"
	CategorySoftware  Category = "software"
	CategoryOther     Category = "other"
)

var Categories = []Category{
	CategoryCrochet,
	CategoryBeanie,
	CategoryBlanket,
	CategoryCandle,
	CategoryDiffuser,
	CategorySoap,
	CategoryFragrance,
	CategoryPainting,
	CategorySoftware,
	CategoryOther,
}

func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
