package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Lixing-Zhang/chefs-menu/internal/menu"
)

var (
	ErrDuplicateDish = errors.New("dish already exists")
)

// DishRepository defines the interface for menu data access
type DishRepository interface {
	Add(ctx context.Context, dish menu.DishRecord) error
	Remove(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter menu.Filter) ([]menu.DishRecord, error)
	Exists(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// InMemoryDishRepository holds the process-lifetime menu
type InMemoryDishRepository struct {
	mu     sync.RWMutex
	dishes *menu.Collection
}

// NewInMemoryDishRepository creates an empty menu repository
func NewInMemoryDishRepository() *InMemoryDishRepository {
	return &InMemoryDishRepository{
		dishes: menu.NewCollection(),
	}
}

// Add appends a dish, rejecting a name already on the menu
func (r *InMemoryDishRepository) Add(ctx context.Context, dish menu.DishRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dishes.Contains(dish.Name) {
		return ErrDuplicateDish
	}

	r.dishes.Add(dish)
	return nil
}

// Remove deletes the first dish with the given name
func (r *InMemoryDishRepository) Remove(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dishes.Remove(name), nil
}

// List returns the dishes matching filter in insertion order
func (r *InMemoryDishRepository) List(ctx context.Context, filter menu.Filter) ([]menu.DishRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.dishes.FilterByCategory(filter), nil
}

// Exists reports whether a dish with the given name is on the menu
func (r *InMemoryDishRepository) Exists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.dishes.Contains(name), nil
}

// Count returns the total number of dishes
func (r *InMemoryDishRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.dishes.Len(), nil
}
