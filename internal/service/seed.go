package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/chefs-menu/internal/models"
)

// sampleMenu is loaded when SEED_MENU is set
var sampleMenu = []models.DishRequest{
	{Name: "Butternut Soup", Description: "Roasted butternut with nutmeg cream", Category: "Starters", Price: "45.50"},
	{Name: "Chicken Livers", Description: "Peri-peri livers on toasted ciabatta", Category: "Starters", Price: "62"},
	{Name: "Bobotie", Description: "Spiced mince bake with yellow rice", Category: "Mains", Price: "135"},
	{Name: "Sirloin Steak", Description: "300g grilled sirloin, pepper sauce", Category: "Mains", Price: "189.90"},
	{Name: "Malva Pudding", Description: "Warm sponge with custard", Category: "Desserts", Price: "55"},
}

// SeedSample adds the sample dishes, skipping any already on the menu
func (s *MenuService) SeedSample(ctx context.Context) (int, error) {
	added := 0
	for _, req := range sampleMenu {
		if _, err := s.AddDish(ctx, req); err != nil {
			if errors.Is(err, ErrDuplicateDish) {
				continue
			}
			return added, fmt.Errorf("failed to seed %q: %w", req.Name, err)
		}
		added++
	}
	return added, nil
}
