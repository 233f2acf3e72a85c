package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice = errors.New("invalid price format")
)

// CurrencyMarker prefixes every displayed price.
const CurrencyMarker = "R"

// ParsePrice parses a price numeral strictly.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return d, nil
}

// AveragePrice returns the mean price of records rounded to two places.
// Prices that do not parse contribute zero; an empty slice averages to zero.
func AveragePrice(records []DishRecord) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(lenientPrice(r.Price))
	}
	return sum.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
}

// FormatPrice renders d as "R 12.34".
func FormatPrice(d decimal.Decimal) string {
	return CurrencyMarker + " " + d.StringFixed(2)
}

func lenientPrice(s string) decimal.Decimal {
	d, err := ParsePrice(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
