package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":         "R$ 0,00",
		"5":         "R$ 5,00",
		"200":       "R$ 200,00",
		"1234.5":    "R$ 1.234,50",
		"1234567.8": "R$ 1.234.567,80",
		"-16":       "-R$ 16,00",
		"0.005":     "R$ 0,01",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2,5", FormatQuantity(decimal.RequireFromString("2.50")))
	assert.Equal(t, "3", FormatQuantity(decimal.NewFromInt(3)))
}
