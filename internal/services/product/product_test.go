package product

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage"
	"github.com/magabrotheeeer/product-catalog/internal/storage/memory"
)

func newTestService() *Service {
	return NewService(memory.NewProductStore())
}

func TestService_Create_Validation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	tests := []struct {
		name        string
		title       string
		description string
		wantField   string
	}{
		{
			name:        "пустое название",
			title:       "",
			description: "A long enough description",
			wantField:   "title",
		},
		{
			name:        "название из пробелов",
			title:       "   ",
			description: "A long enough description",
			wantField:   "title",
		},
		{
			name:        "название короче 3 символов",
			title:       "ab",
			description: "A long enough description",
			wantField:   "title",
		},
		{
			name:        "название длиннее 100 символов",
			title:       strings.Repeat("a", 101),
			description: "A long enough description",
			wantField:   "title",
		},
		{
			name:        "пустое описание",
			title:       "Valid title",
			description: "",
			wantField:   "description",
		},
		{
			name:        "описание короче 10 символов",
			title:       "Valid title",
			description: "123456789",
			wantField:   "description",
		},
		{
			name:        "описание длиннее 1000 символов",
			title:       "Valid title",
			description: strings.Repeat("a", 1001),
			wantField:   "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, 1, models.DummyProduct{
				Title:       tt.title,
				Description: tt.description,
			})
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}

	// Хранилище не тронуто отклоненными запросами
	list, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Create_BoundaryLengths(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	tests := []struct {
		name        string
		title       string
		description string
		wantOK      bool
	}{
		{
			name:        "название ровно 3 символа",
			title:       "abc",
			description: "1234567890",
			wantOK:      true,
		},
		{
			name:        "название 2 символа",
			title:       "ab",
			description: "1234567890",
			wantOK:      false,
		},
		{
			name:        "описание ровно 10 символов",
			title:       "abc",
			description: "1234567890",
			wantOK:      true,
		},
		{
			name:        "описание 9 символов",
			title:       "abc",
			description: "123456789",
			wantOK:      false,
		},
		{
			name:        "название ровно 100 символов",
			title:       strings.Repeat("a", 100),
			description: strings.Repeat("b", 10),
			wantOK:      true,
		},
		{
			name:        "описание ровно 1000 символов",
			title:       "abc",
			description: strings.Repeat("b", 1000),
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, 1, models.DummyProduct{
				Title:       tt.title,
				Description: tt.description,
			})
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
			}
		})
	}
}

func TestService_Create_DefaultsAndTrim(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, models.DummyProduct{
		Title:       "  My Item  ",
		Description: "  A long enough description  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "My Item", created.Title)
	assert.Equal(t, "A long enough description", created.Description)
	assert.Equal(t, DefaultCategory, created.Category)
	assert.Equal(t, 1, created.UserID)
	assert.Equal(t, 1, created.ID)
}

func TestService_Update(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, models.DummyProduct{
		Title:       "Original",
		Description: "Original description",
		Category:    "Fashion",
	})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, 1, models.DummyProduct{
		Title:       "Changed",
		Description: "Changed description",
	})
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, "Fashion", updated.Category)

	// Валидация работает и на обновлении
	_, err = service.Update(ctx, created.ID, 1, models.DummyProduct{
		Title:       "ab",
		Description: "Changed description",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	// Чужой товар не обновляется
	_, err = service.Update(ctx, created.ID, 2, models.DummyProduct{
		Title:       "Stolen",
		Description: "Stolen description",
	})
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))
}

func TestService_ReadAndRemove_Scoped(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, models.DummyProduct{
		Title:       "My Item",
		Description: "A long enough description",
	})
	require.NoError(t, err)

	_, err = service.Read(ctx, created.ID, 2)
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))

	_, err = service.Remove(ctx, created.ID, 2)
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))

	removed, err := service.Remove(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "My Item", removed.Title)
}
