// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"candle", "lavender-soap", "v2-beanie", "a"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}

	invalid := []string{"", "Lavender", "double--dash", "-leading", "trailing-", "has space", "sn_ake"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}

func TestIsValidAlias(t *testing.T) {
	valid := []string{"maker-1a2b", "zoe", "craft-queen"}
	for _, s := range valid {
		assert.True(t, IsValidAlias(s), s)
	}

	invalid := []string{"", "ab", "Has-Caps", "with space", "emoji✨"}
	for _, s := range invalid {
		assert.False(t, IsValidAlias(s), s)
	}
}

func TestValidateStructUsesCustomTags(t *testing.T) {
	type form struct {
		Slug  string `validate:"required,slug"`
		Alias string `validate:"omitempty,alias"`
	}

	assert.NoError(t, ValidateStruct(&form{Slug: "lavender-soap"}))
	assert.Error(t, ValidateStruct(&form{Slug: "Not A Slug"}))
	assert.Error(t, ValidateStruct(&form{Slug: "ok", Alias: "ab"}))
}

func TestFirstValidationMessage(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	err := ValidateStruct(&form{})
	assert.Equal(t, "email is required", FirstValidationMessage(err))

	err = ValidateStruct(&form{Email: "not-an-email"})
	assert.Equal(t, "invalid email format", FirstValidationMessage(err))
}
