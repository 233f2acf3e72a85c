package models

import (
	"github.com/shopspring/decimal"

	"github.com/Lixing-Zhang/chefs-menu/internal/menu"
)

// CategoryAverage is the mean price of one course
type CategoryAverage struct {
	Category menu.Category
	Count    int
	Average  decimal.Decimal
}

// CategoryAverageResponse is the JSON form of CategoryAverage
type CategoryAverageResponse struct {
	Category     string `json:"category"`
	Count        int    `json:"count"`
	Average      string `json:"average"`
	DisplayPrice string `json:"displayPrice"`
}

// AveragesResponse lists one average per course, in menu order
type AveragesResponse struct {
	Averages []CategoryAverageResponse `json:"averages"`
}

// NewAveragesResponse converts service averages for output
func NewAveragesResponse(avgs []CategoryAverage) AveragesResponse {
	out := make([]CategoryAverageResponse, 0, len(avgs))
	for _, a := range avgs {
		out = append(out, CategoryAverageResponse{
			Category:     a.Category.String(),
			Count:        a.Count,
			Average:      a.Average.StringFixed(2),
			DisplayPrice: menu.FormatPrice(a.Average),
		})
	}
	return AveragesResponse{Averages: out}
}
