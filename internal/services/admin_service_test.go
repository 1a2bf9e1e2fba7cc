// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthmade/storefront-backend/internal/models"
)

func TestBuildProductUpdates(t *testing.T) {
	existing := &models.Product{
		Slug:  "lavender-soap",
		Title: "Lavender Soap",
		Transparency: models.Transparency{
			MaterialsCost:   10,
			DonationPercent: 5,
		},
	}

	updates, err := buildProductUpdates(existing, map[string]interface{}{
		"title":     "Lavender Soap Bar",
		"price":     "12.50",
		"inventory": float64(30),
		"inStock":   "true",
		"published": true,
		"tags":      []interface{}{"soap", "lavender"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Lavender Soap Bar", updates["title"])
	assert.Equal(t, 12.5, updates["price"])
	assert.Equal(t, 30, updates["inventory"])
	assert.Equal(t, true, updates["in_stock"])
	assert.Equal(t, true, updates["published"])
	assert.Equal(t, pq.StringArray{"soap", "lavender"}, updates["tags"])
}

func TestBuildProductUpdatesAbsentFieldsUntouched(t *testing.T) {
	existing := &models.Product{Slug: "mug", Title: "Mug"}

	updates, err := buildProductUpdates(existing, map[string]interface{}{
		"subtitle": "hand thrown",
	})
	require.NoError(t, err)

	assert.Len(t, updates, 1)
	assert.NotContains(t, updates, "title")
	assert.NotContains(t, updates, "price")
}

func TestBuildProductUpdatesAllOrNothing(t *testing.T) {
	existing := &models.Product{Slug: "mug", Title: "Mug"}

	updates, err := buildProductUpdates(existing, map[string]interface{}{
		"title": "Better Mug",
		"price": "not a number",
	})

	require.Error(t, err)
	assert.Nil(t, updates)
}

func TestBuildProductUpdatesRejectsUnknownField(t *testing.T) {
	_, err := buildProductUpdates(&models.Product{}, map[string]interface{}{
		"rating": float64(5),
	})
	assert.Error(t, err)
}

func TestBuildProductUpdatesRejectsBadSlug(t *testing.T) {
	_, err := buildProductUpdates(&models.Product{}, map[string]interface{}{
		"slug": "Not A Slug",
	})
	assert.Error(t, err)
}

func TestBuildProductUpdatesRejectsUnknownCategory(t *testing.T) {
	_, err := buildProductUpdates(&models.Product{}, map[string]interface{}{
		"category": "pottery",
	})
	assert.Error(t, err)
}

func TestBuildProductUpdatesRejectsNegativeNumbers(t *testing.T) {
	_, err := buildProductUpdates(&models.Product{}, map[string]interface{}{
		"price": float64(-1),
	})
	assert.Error(t, err)

	_, err = buildProductUpdates(&models.Product{}, map[string]interface{}{
		"inventory": float64(-3),
	})
	assert.Error(t, err)
}

func TestBuildProductUpdatesMergesTransparency(t *testing.T) {
	existing := &models.Product{
		Transparency: models.Transparency{
			MaterialsCost:   10,
			DonationPercent: 5,
		},
	}

	updates, err := buildProductUpdates(existing, map[string]interface{}{
		"transparency": map[string]interface{}{
			"donationPercent": "8",
		},
	})
	require.NoError(t, err)

	merged, ok := updates["transparency"].(models.Transparency)
	require.True(t, ok)
	assert.Equal(t, 10.0, merged.MaterialsCost)
	assert.Equal(t, 8.0, merged.DonationPercent)
}

func TestBuildProductUpdatesRejectsBadTransparency(t *testing.T) {
	_, err := buildProductUpdates(&models.Product{}, map[string]interface{}{
		"transparency": map[string]interface{}{
			"materialsCost": "lots",
		},
	})
	assert.Error(t, err)

	_, err = buildProductUpdates(&models.Product{}, map[string]interface{}{
		"transparency": "not an object",
	})
	assert.Error(t, err)
}

func TestBuildProductUpdatesEmptyPatch(t *testing.T) {
	updates, err := buildProductUpdates(&models.Product{}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, updates)
}
