// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Slug        string   `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	Title       string   `json:"title" gorm:"size:200;not null"`
	Subtitle    string   `json:"subtitle" gorm:"size:300"`
	Description string   `json:"description" gorm:"type:text"`
	Category    Category `json:"category" gorm:"type:varchar(20);index;not null"`
	Price       float64  `json:"price" gorm:"type:decimal(10,2);not null"`
	Inventory   int      `json:"inventory" gorm:"default:0"`
	// InStock is stored independently of Inventory; the admin sets both
	// explicitly and they are allowed to drift.
	InStock      bool           `json:"inStock" gorm:"default:false"`
	Published    bool           `json:"published" gorm:"default:false;index"`
	HeroImage    string         `json:"heroImage" gorm:"size:500"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	Details      pq.StringArray `json:"details" gorm:"type:text[]"`
	Transparency Transparency   `json:"transparency" gorm:"type:jsonb"`
}
