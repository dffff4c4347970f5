package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCriteria(t *testing.T) {
	t.Run("valid criteria", func(t *testing.T) {
		criteria := &SearchCriteria{
			Product:  "Women garments",
			Industry: "Textiles",
			Region:   "India",
			Keywords: []string{"Sari"},
			Limit:    20,
			MinScore: 55,
		}
		assert.NoError(t, ValidateCriteria(criteria))
	})

	t.Run("minimal criteria", func(t *testing.T) {
		criteria := &SearchCriteria{Product: "Pumps", Industry: "Machinery"}
		assert.NoError(t, ValidateCriteria(criteria))
	})

	t.Run("nil criteria", func(t *testing.T) {
		err := ValidateCriteria(nil)
		assert.ErrorIs(t, err, ErrInvalidCriteria)
	})

	t.Run("missing product", func(t *testing.T) {
		err := ValidateCriteria(&SearchCriteria{Industry: "Textiles"})
		assert.ErrorIs(t, err, ErrMissingProduct)
	})

	t.Run("whitespace product", func(t *testing.T) {
		err := ValidateCriteria(&SearchCriteria{Product: "   ", Industry: "Textiles"})
		assert.ErrorIs(t, err, ErrMissingProduct)
	})

	t.Run("missing industry", func(t *testing.T) {
		err := ValidateCriteria(&SearchCriteria{Product: "Garments"})
		assert.ErrorIs(t, err, ErrMissingIndustry)
	})

	t.Run("negative limit", func(t *testing.T) {
		err := ValidateCriteria(&SearchCriteria{Product: "Garments", Industry: "Textiles", Limit: -1})
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("min score out of range", func(t *testing.T) {
		err := ValidateCriteria(&SearchCriteria{Product: "Garments", Industry: "Textiles", MinScore: 101})
		assert.ErrorIs(t, err, ErrInvalidMinScore)

		err = ValidateCriteria(&SearchCriteria{Product: "Garments", Industry: "Textiles", MinScore: -0.5})
		assert.ErrorIs(t, err, ErrInvalidMinScore)
	})
}

func TestValidateRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := &EmbeddedRecord{Content: "Acme Exports, Mumbai, textiles"}
		assert.NoError(t, ValidateRecord(record))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRecord(nil), ErrInvalidRecord)
	})

	t.Run("empty content", func(t *testing.T) {
		err := ValidateRecord(&EmbeddedRecord{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("acme exports"), IDFromContent("acme exports"))
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("acme exports"), IDFromContent("acme imports"))
	})
}
