package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtshop/internal/domain"
	"gtshop/internal/infrastructure/localstore"
)

func openStoreWith(t *testing.T, content string) *localstore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := localstore.Open(path)
	require.NoError(t, err)
	return store
}

func TestCorruptedOrderListTreatedAsEmpty(t *testing.T) {
	store := openStoreWith(t, `{"orders_all": {"orders": 42}}`)
	repo := CreateOrderRepository(store)
	ctx := context.Background()

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, err = repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	found, err := repo.SetStatus(ctx, "ORDER_0_XXXXX", domain.StatusProcessed)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAppendRecoversCorruptedOrderList(t *testing.T) {
	store := openStoreWith(t, `{"orders_all": {"orders": 42}}`)
	repo := CreateOrderRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, domain.Order{
		OrderID:   "ORDER_1_ABCDE",
		UserID:    "u1",
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}))

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORDER_1_ABCDE", orders[0].OrderID)
}
