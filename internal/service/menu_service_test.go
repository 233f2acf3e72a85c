package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/chefs-menu/internal/menu"
	"github.com/Lixing-Zhang/chefs-menu/internal/models"
	"github.com/Lixing-Zhang/chefs-menu/internal/repository"
)

func newTestService() *MenuService {
	return NewMenuService(repository.NewInMemoryDishRepository())
}

func TestMenuService_AddDish(t *testing.T) {
	valid := models.DishRequest{Name: "Soup", Description: "Hot", Category: "Starters", Price: "45.50"}

	tests := []struct {
		name    string
		req     models.DishRequest
		wantErr error
	}{
		{
			name:    "valid dish",
			req:     valid,
			wantErr: nil,
		},
		{
			name:    "category matched case-insensitively",
			req:     models.DishRequest{Name: "Steak", Description: "Grilled", Category: "mains", Price: "120"},
			wantErr: nil,
		},
		{
			name:    "empty name",
			req:     models.DishRequest{Description: "Hot", Category: "Starters", Price: "45.50"},
			wantErr: ErrIncompleteSubmission,
		},
		{
			name:    "empty description",
			req:     models.DishRequest{Name: "Soup", Category: "Starters", Price: "45.50"},
			wantErr: ErrIncompleteSubmission,
		},
		{
			name:    "whitespace-only price",
			req:     models.DishRequest{Name: "Soup", Description: "Hot", Category: "Starters", Price: "  "},
			wantErr: ErrIncompleteSubmission,
		},
		{
			name:    "missing category",
			req:     models.DishRequest{Name: "Soup", Description: "Hot", Price: "45.50"},
			wantErr: ErrIncompleteSubmission,
		},
		{
			name:    "unknown category",
			req:     models.DishRequest{Name: "Soup", Description: "Hot", Category: "Drinks", Price: "45.50"},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "non-numeric price",
			req:     models.DishRequest{Name: "Soup", Description: "Hot", Category: "Starters", Price: "cheap"},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			req:     models.DishRequest{Name: "Soup", Description: "Hot", Category: "Starters", Price: "-1"},
			wantErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			ctx := context.Background()

			dish, err := svc.AddDish(ctx, tt.req)

			count, cerr := svc.CountDishes(ctx)
			require.NoError(t, cerr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, dish)
				assert.Equal(t, 0, count)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, dish)
			assert.Equal(t, 1, count)
		})
	}
}

func TestMenuService_AddDish_TrimsAndNormalizes(t *testing.T) {
	svc := newTestService()

	dish, err := svc.AddDish(context.Background(), models.DishRequest{
		Name: "  Soup ", Description: " Hot ", Category: "starters", Price: " 45.50 ",
	})

	require.NoError(t, err)
	assert.Equal(t, menu.DishRecord{Name: "Soup", Description: "Hot", Category: menu.Starters, Price: "45.50"}, *dish)
}

func TestMenuService_AddDish_Duplicate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	req := models.DishRequest{Name: "Soup", Description: "Hot", Category: "Starters", Price: "45.50"}

	_, err := svc.AddDish(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddDish(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateDish)

	count, _ := svc.CountDishes(ctx)
	assert.Equal(t, 1, count)
}

func TestMenuService_RemoveDish(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.AddDish(ctx, models.DishRequest{Name: "Soup", Description: "Hot", Category: "Starters", Price: "45.50"})
	require.NoError(t, err)

	removed, err := svc.RemoveDish(ctx, "Bobotie")
	require.NoError(t, err)
	assert.False(t, removed)

	dishes, _ := svc.ListDishes(ctx)
	assert.Len(t, dishes, 1)

	removed, err = svc.RemoveDish(ctx, "Soup")
	require.NoError(t, err)
	assert.True(t, removed)

	dishes, _ = svc.ListDishes(ctx)
	assert.Empty(t, dishes)

	_, err = svc.RemoveDish(ctx, " ")
	assert.ErrorIs(t, err, ErrIncompleteSubmission)
}

func TestMenuService_FilterAndAverages(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, req := range []models.DishRequest{
		{Name: "Soup", Description: "Hot", Category: "Starters", Price: "45.50"},
		{Name: "Steak", Description: "Grilled", Category: "Mains", Price: "120"},
	} {
		_, err := svc.AddDish(ctx, req)
		require.NoError(t, err)
	}

	starters, filter, err := svc.FilterDishes(ctx, "starters")
	require.NoError(t, err)
	require.Len(t, starters, 1)
	assert.Equal(t, "Soup", starters[0].Name)
	assert.Equal(t, menu.ByCategory(menu.Starters), filter)

	all, filter, err := svc.FilterDishes(ctx, "All")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.True(t, filter.IsAll())

	_, _, err = svc.FilterDishes(ctx, "Sides")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	averages, err := svc.CategoryAverages(ctx)
	require.NoError(t, err)
	require.Len(t, averages, 3)

	assert.Equal(t, menu.Starters, averages[0].Category)
	assert.Equal(t, "45.50", averages[0].Average.StringFixed(2))
	assert.Equal(t, menu.Mains, averages[1].Category)
	assert.Equal(t, "120.00", averages[1].Average.StringFixed(2))
	assert.Equal(t, 1, averages[1].Count)
	assert.Equal(t, menu.Desserts, averages[2].Category)
	assert.True(t, averages[2].Average.IsZero())
	assert.Equal(t, 0, averages[2].Count)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, MsgIncompleteSubmission, UserMessage(ErrIncompleteSubmission))
	assert.Equal(t, MsgDuplicateDish, UserMessage(fmt.Errorf("wrapped: %w", ErrDuplicateDish)))
	assert.Equal(t, "", UserMessage(errors.New("disk on fire")))
}

func TestMenuService_SeedSample(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	added, err := svc.SeedSample(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleMenu), added)

	// Seeding twice leaves the menu unchanged.
	added, err = svc.SeedSample(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	count, _ := svc.CountDishes(ctx)
	assert.Equal(t, len(sampleMenu), count)
}
