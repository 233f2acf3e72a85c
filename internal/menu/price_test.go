package menu

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(ps ...string) []DishRecord {
	out := make([]DishRecord, 0, len(ps))
	for _, p := range ps {
		out = append(out, DishRecord{Name: "x" + p, Description: "d", Category: Mains, Price: p})
	}
	return out
}

func TestAveragePrice(t *testing.T) {
	tests := []struct {
		name    string
		records []DishRecord
		want    string
	}{
		{"empty", nil, "0.00"},
		{"two prices", prices("10.00", "20.00"), "15.00"},
		{"single integer", prices("120"), "120.00"},
		{"rounds to two places", prices("1", "2", "2.015"), "1.67"},
		{"non-numeric counts as zero", prices("10", "abc"), "5.00"},
		{"empty price counts as zero", prices("", "30"), "15.00"},
		{"whitespace tolerated", prices(" 12.5 ", "7.5"), "10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AveragePrice(tt.records)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAveragePrice_EmptyIsZero(t *testing.T) {
	assert.True(t, AveragePrice([]DishRecord{}).IsZero())
}

func TestParsePrice(t *testing.T) {
	d, err := ParsePrice("45.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("45.5")))

	for _, bad := range []string{"", "   ", "R45", "12,50", "ten"} {
		_, err := ParsePrice(bad)
		assert.True(t, errors.Is(err, ErrInvalidPrice), "expected ErrInvalidPrice for %q", bad)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R 45.50", FormatPrice(decimal.RequireFromString("45.5")))
	assert.Equal(t, "R 0.00", FormatPrice(decimal.Zero))
	assert.Equal(t, "R 120.00", steak().DisplayPrice())
	assert.Equal(t, "R 0.00", DishRecord{Price: "free"}.DisplayPrice())
}
