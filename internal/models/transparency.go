// internal/models/transparency.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
)

// Transparency is the nested cost/ethics breakdown attached to a product.
// It is stored as a single jsonb column; partial updates are merged
// field-by-field so a patch carrying one field never erases the others.
type Transparency struct {
	MaterialsCost   float64 `json:"materialsCost"`
	LaborHours      float64 `json:"laborHours"`
	LaborValue      float64 `json:"laborValue"`
	OverheadCost    float64 `json:"overheadCost"`
	PackagingCost   float64 `json:"packagingCost"`
	DonationPercent float64 `json:"donationPercent"`
	WhereMoneyGoes  string  `json:"whereMoneyGoes"`
	Notes           string  `json:"notes"`
}

func (t Transparency) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Transparency) Scan(value interface{}) error {
	if value == nil {
		*t = Transparency{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if str, isStr := value.(string); isStr {
			bytes = []byte(str)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, t)
}

// MergeTransparency applies patch onto existing field-by-field: keys absent
// from the patch keep their prior value, keys present replace the field
// wholesale. Numeric fields may arrive as form text and are coerced; any
// coercion or range failure rejects the whole patch.
func MergeTransparency(existing Transparency, patch map[string]interface{}) (Transparency, error) {
	merged := existing

	numeric := map[string]*float64{
		"materialsCost":   &merged.MaterialsCost,
		"laborHours":      &merged.LaborHours,
		"laborValue":      &merged.LaborValue,
		"overheadCost":    &merged.OverheadCost,
		"packagingCost":   &merged.PackagingCost,
		"donationPercent": &merged.DonationPercent,
	}

	for field, target := range numeric {
		raw, present := patch[field]
		if !present {
			continue
		}
		value, err := CoerceDecimal(field, raw)
		if err != nil {
			return Transparency{}, err
		}
		if value < 0 {
			return Transparency{}, apperrors.Validation("%s must not be negative", field)
		}
		*target = value
	}

	if merged.DonationPercent > 100 {
		return Transparency{}, apperrors.Validation("donationPercent must be between 0 and 100")
	}

	if raw, present := patch["whereMoneyGoes"]; present {
		text, err := coerceString("whereMoneyGoes", raw)
		if err != nil {
			return Transparency{}, err
		}
		merged.WhereMoneyGoes = text
	}

	if raw, present := patch["notes"]; present {
		text, err := coerceString("notes", raw)
		if err != nil {
			return Transparency{}, err
		}
		merged.Notes = text
	}

	return merged, nil
}

// CoerceDecimal accepts a JSON number or numeric form text for field and
// returns its value, or a validation error naming the field.
func CoerceDecimal(field string, raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, apperrors.Validation("%s must be a number", field)
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, apperrors.Validation("%s must be a number", field)
		}
		return value, nil
	case nil:
		return 0, apperrors.Validation("%s must be a number", field)
	default:
		return 0, apperrors.Validation("%s must be a number", field)
	}
}

// CoerceInt is CoerceDecimal restricted to whole numbers.
func CoerceInt(field string, raw interface{}) (int, error) {
	value, err := CoerceDecimal(field, raw)
	if err != nil {
		return 0, err
	}
	if value != float64(int(value)) {
		return 0, apperrors.Validation("%s must be a whole number", field)
	}
	return int(value), nil
}

// CoerceBool accepts a JSON bool or the form strings "true"/"false".
func CoerceBool(field string, raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, apperrors.Validation("%s must be true or false", field)
		}
		return parsed, nil
	default:
		return false, apperrors.Validation("%s must be true or false", field)
	}
}

func coerceString(field string, raw interface{}) (string, error) {
	text, ok := raw.(string)
	if !ok {
		return "", apperrors.Validation("%s must be a string", field)
	}
	return text, nil
}
