// internal/catalog/query.go

// Package catalog defines the typed catalog query and its flat key-value
// encoding. The codec is pure: it does no I/O and is shared by the HTTP
// handlers, the query executor and the cache key scheme.
package catalog

import (
	"net/url"
	"strconv"

	"github.com/hearthmade/storefront-backend/internal/apperrors"
	"github.com/hearthmade/storefront-backend/internal/models"
)

const (
	SortNew       = "new"
	SortOld       = "old"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

const (
	DefaultLimit = 24
	MaxLimit     = 100
)

// Query is an immutable filter set. A change produces a new Query via
// ApplyPatch; the zero filters decode from an empty mapping.
type Query struct {
	Q        string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Sort     string
	Page     int
	Limit    int
}

func Default() Query {
	return Query{
		Sort:  SortNew,
		Page:  1,
		Limit: DefaultLimit,
	}
}

// Encode flattens q to url.Values. Empty and default values are never
// emitted, so Decode(Encode(q)) == q for any well-formed q.
func (q Query) Encode() url.Values {
	values := url.Values{}

	if q.Q != "" {
		values.Set("q", q.Q)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.InStock != nil {
		values.Set("inStock", strconv.FormatBool(*q.InStock))
	}
	if q.Sort != "" && q.Sort != SortNew {
		values.Set("sort", q.Sort)
	}
	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 && q.Limit != DefaultLimit {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}

// CacheKey is the canonical encoding used to key cached result pages.
func (q Query) CacheKey() string {
	return "catalog:" + q.Encode().Encode()
}

// Decode parses a flat key-value mapping into a Query. Keys absent from the
// mapping decode to their defaults. Malformed numeric or boolean text is a
// validation error naming the offending key.
func Decode(values url.Values) (Query, error) {
	q := Default()

	q.Q = values.Get("q")
	q.Category = values.Get("category")

	if raw := values.Get("minPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Query{}, apperrors.Validation("minPrice must be a number")
		}
		q.MinPrice = &price
	}

	if raw := values.Get("maxPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Query{}, apperrors.Validation("maxPrice must be a number")
		}
		q.MaxPrice = &price
	}

	if raw := values.Get("inStock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return Query{}, apperrors.Validation("inStock must be true or false")
		}
		q.InStock = &inStock
	}

	if raw := values.Get("sort"); raw != "" {
		q.Sort = raw
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, apperrors.Validation("page must be a whole number")
		}
		q.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, apperrors.Validation("limit must be a whole number")
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		q.Limit = limit
	}

	return q, nil
}

// ApplyPatch produces a new Query with the patch entries set (an empty value
// removes the key). Any change other than direct pagination forces page back
// to 1 so altering a filter never strands the viewer on an out-of-range page.
func (q Query) ApplyPatch(patch map[string]string) (Query, error) {
	values := q.Encode()

	pageOnly := true
	for key, value := range patch {
		if key != "page" {
			pageOnly = false
		}
		if value == "" {
			values.Del(key)
		} else {
			values.Set(key, value)
		}
	}

	if !pageOnly {
		values.Del("page")
	}

	return Decode(values)
}

// Validate rejects malformed filter combinations before any query executes.
func (q Query) Validate() error {
	if q.Category != "" && !models.IsValidCategory(models.Category(q.Category)) {
		return apperrors.Validation("unknown category %q", q.Category)
	}

	if q.MinPrice != nil && *q.MinPrice < 0 {
		return apperrors.Validation("minPrice must not be negative")
	}
	if q.MaxPrice != nil && *q.MaxPrice < 0 {
		return apperrors.Validation("maxPrice must not be negative")
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return apperrors.Validation("minPrice must not exceed maxPrice")
	}

	switch q.Sort {
	case SortNew, SortOld, SortPriceAsc, SortPriceDesc:
	default:
		return apperrors.Validation("unknown sort %q", q.Sort)
	}

	if q.Page < 1 {
		return apperrors.Validation("page must be at least 1")
	}
	if q.Limit < 1 {
		return apperrors.Validation("limit must be at least 1")
	}

	return nil
}
