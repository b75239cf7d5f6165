package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/domain/model"
	"storefront/pkg/storage"
)

func sampleCart() []model.CartItem {
	return []model.CartItem{
		{Product: model.Product{ID: 1, Name: "Sunset Poster", Price: 12.50}, Quantity: 2},
		{Product: model.Product{ID: 5, Name: "City Map Print", Price: 18.00}, Quantity: 1},
	}
}

func TestCartRoundTrip(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, storage.NewCartRepository(kv).Save(sampleCart()))

	loaded, err := storage.NewCartRepository(kv).Load()
	require.NoError(t, err)
	assert.Equal(t, sampleCart(), loaded)
}

func TestCartRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, storage.NewCartRepository(storage.NewFileStore(path)).Save(sampleCart()))

	loaded, err := storage.NewCartRepository(storage.NewFileStore(path)).Load()
	require.NoError(t, err)
	assert.Equal(t, sampleCart(), loaded)
}

func TestCartEmptySlotLoadsEmpty(t *testing.T) {
	repo := storage.NewCartRepository(storage.NewMemoryStore())

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCartUnparsableBlobLoadsEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set("cart", []byte("not json")))

	loaded, err := storage.NewCartRepository(kv).Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
