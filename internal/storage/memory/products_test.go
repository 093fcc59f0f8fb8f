package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage"
)

func newTestProduct(title string, ownerID int) models.Product {
	return models.Product{
		Title:       title,
		Description: "A long enough description",
		Category:    "Electronics",
		UserID:      ownerID,
	}
}

func TestProductStore_CreateProduct_AssignsIDs(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	first, err := store.CreateProduct(ctx, newTestProduct("First", 1))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	second, err := store.CreateProduct(ctx, newTestProduct("Second", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	// После удаления максимального ID счет продолжается с max+1
	_, err = store.RemoveProduct(ctx, second.ID, 1)
	require.NoError(t, err)

	third, err := store.CreateProduct(ctx, newTestProduct("Third", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, third.ID)
}

func TestProductStore_ListProducts_ScopedToOwner(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	_, err := store.CreateProduct(ctx, newTestProduct("Alice 1", 1))
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, newTestProduct("Bob 1", 2))
	require.NoError(t, err)
	_, err = store.CreateProduct(ctx, newTestProduct("Alice 2", 1))
	require.NoError(t, err)

	aliceProducts, err := store.ListProducts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, aliceProducts, 2)
	assert.Equal(t, "Alice 1", aliceProducts[0].Title)
	assert.Equal(t, "Alice 2", aliceProducts[1].Title)

	bobProducts, err := store.ListProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, bobProducts, 1)

	emptyList, err := store.ListProducts(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, emptyList)
}

func TestProductStore_ReadProduct_OwnershipMasking(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, newTestProduct("Owned by Alice", 1))
	require.NoError(t, err)

	found, err := store.ReadProduct(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Owned by Alice", found.Title)

	// Чужая запись неотличима от отсутствующей
	_, errForeign := store.ReadProduct(ctx, created.ID, 2)
	_, errAbsent := store.ReadProduct(ctx, 999, 2)
	require.Error(t, errForeign)
	require.Error(t, errAbsent)
	assert.True(t, errors.Is(errForeign, storage.ErrProductNotFound))
	assert.True(t, errors.Is(errAbsent, storage.ErrProductNotFound))
}

func TestProductStore_UpdateProduct(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, models.Product{
		Title:       "Old title",
		Description: "Old description text",
		Category:    "Electronics",
		Image:       "/uploads/products/old.png",
		UserID:      1,
	})
	require.NoError(t, err)

	updated, err := store.UpdateProduct(ctx, created.ID, 1, models.DummyProduct{
		Title:       "New title",
		Description: "New description text",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "New title", updated.Title)
	// Пустые категория и изображение сохраняют прежние значения
	assert.Equal(t, "Electronics", updated.Category)
	assert.Equal(t, "/uploads/products/old.png", updated.Image)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = store.UpdateProduct(ctx, created.ID, 2, models.DummyProduct{
		Title:       "Stolen title",
		Description: "Stolen description",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))
}

func TestProductStore_RemoveProduct(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, newTestProduct("To be removed", 1))
	require.NoError(t, err)

	// Удаление чужим пользователем не проходит
	_, err = store.RemoveProduct(ctx, created.ID, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))

	removed, err := store.RemoveProduct(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "To be removed", removed.Title)

	list, err := store.ListProducts(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Повторное удаление дает ту же ошибку
	_, err = store.RemoveProduct(ctx, created.ID, 1)
	assert.True(t, errors.Is(err, storage.ErrProductNotFound))
}
