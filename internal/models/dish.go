package models

import "github.com/Lixing-Zhang/chefs-menu/internal/menu"

// DishRequest is the body of an add-dish submission. All four fields are
// required.
type DishRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// DishResponse is a dish as shown to clients
type DishResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	DisplayPrice string `json:"displayPrice"`
}

// NewDishResponse converts a menu record for output
func NewDishResponse(d menu.DishRecord) DishResponse {
	return DishResponse{
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category.String(),
		Price:        d.Price,
		DisplayPrice: d.DisplayPrice(),
	}
}

// NewDishResponses converts a list of records, never returning nil
func NewDishResponses(dishes []menu.DishRecord) []DishResponse {
	out := make([]DishResponse, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, NewDishResponse(d))
	}
	return out
}

// AddDishResponse acknowledges a successful submission
type AddDishResponse struct {
	Message string       `json:"message"`
	Dish    DishResponse `json:"dish"`
}

// MenuResponse is a (possibly filtered) listing. Total always counts the
// whole menu.
type MenuResponse struct {
	Total    int            `json:"total"`
	Category string         `json:"category"`
	Dishes   []DishResponse `json:"dishes"`
}
