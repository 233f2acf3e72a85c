package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Lixing-Zhang/chefs-menu/internal/menu"
	"github.com/Lixing-Zhang/chefs-menu/internal/models"
	"github.com/Lixing-Zhang/chefs-menu/internal/repository"
)

var (
	ErrIncompleteSubmission = errors.New("incomplete submission: all fields are required")
	ErrUnknownCategory      = errors.New("category must be Starters, Mains or Desserts")
	ErrInvalidPrice         = errors.New("price must be a non-negative number")
	ErrDuplicateDish        = errors.New("a dish with this name is already on the menu")
)

// MenuService handles menu business logic
type MenuService struct {
	repo repository.DishRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.DishRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// AddDish validates a submission and appends it to the menu
func (s *MenuService) AddDish(ctx context.Context, req models.DishRequest) (*menu.DishRecord, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	rawCategory := strings.TrimSpace(req.Category)
	price := strings.TrimSpace(req.Price)

	if name == "" || description == "" || rawCategory == "" || price == "" {
		return nil, ErrIncompleteSubmission
	}

	category, err := menu.ParseCategory(rawCategory)
	if err != nil {
		return nil, ErrUnknownCategory
	}

	amount, err := menu.ParsePrice(price)
	if err != nil || amount.IsNegative() {
		return nil, ErrInvalidPrice
	}

	dish := menu.DishRecord{
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
	}

	if err := s.repo.Add(ctx, dish); err != nil {
		if errors.Is(err, repository.ErrDuplicateDish) {
			return nil, ErrDuplicateDish
		}
		return nil, fmt.Errorf("failed to add dish: %w", err)
	}

	return &dish, nil
}

// RemoveDish deletes a dish by name. A name that is not on the menu leaves
// it unchanged and reports false.
func (s *MenuService) RemoveDish(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrIncompleteSubmission
	}

	removed, err := s.repo.Remove(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to remove dish: %w", err)
	}
	return removed, nil
}

// ListDishes returns the whole menu in insertion order
func (s *MenuService) ListDishes(ctx context.Context) ([]menu.DishRecord, error) {
	return s.repo.List(ctx, menu.All)
}

// FilterDishes returns the dishes of one course, or all of them for "All"
// or an empty category, together with the filter that was applied
func (s *MenuService) FilterDishes(ctx context.Context, category string) ([]menu.DishRecord, menu.Filter, error) {
	filter, err := menu.ParseFilter(category)
	if err != nil {
		return nil, menu.Filter{}, ErrUnknownCategory
	}

	dishes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, filter, fmt.Errorf("failed to list dishes: %w", err)
	}
	return dishes, filter, nil
}

// CountDishes returns the total number of dishes on the menu
func (s *MenuService) CountDishes(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// CategoryAverages returns the average price of every course, in menu
// order. A course with no dishes averages to zero.
func (s *MenuService) CategoryAverages(ctx context.Context) ([]models.CategoryAverage, error) {
	dishes, err := s.repo.List(ctx, menu.All)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	categories := menu.Categories()
	averages := make([]models.CategoryAverage, 0, len(categories))
	for _, c := range categories {
		filter := menu.ByCategory(c)
		var course []menu.DishRecord
		for _, d := range dishes {
			if filter.Matches(d) {
				course = append(course, d)
			}
		}
		averages = append(averages, models.CategoryAverage{
			Category: c,
			Count:    len(course),
			Average:  menu.AveragePrice(course),
		})
	}

	return averages, nil
}
