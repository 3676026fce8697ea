package order

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("Sequential ids", func(t *testing.T) {
		repo := NewRepository()
		for i := 0; i < 5; i++ {
			o, err := repo.Append(ctx, Order{Student: "alice", Item: "Tea", Quantity: 1, Status: StatusPending})
			require.NoError(t, err)
			assert.Equal(t, i, o.ID)
		}

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		for i, o := range orders {
			assert.Equal(t, i, o.ID)
		}
	})

	t.Run("Caller supplied id is ignored", func(t *testing.T) {
		repo := NewRepository()
		o, err := repo.Append(ctx, Order{ID: 42})
		require.NoError(t, err)
		assert.Equal(t, 0, o.ID)
	})

	t.Run("Concurrent appends stay gapless", func(t *testing.T) {
		repo := NewRepository()
		const n = 200

		ids := make([]int, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				o, err := repo.Append(ctx, Order{Student: "bob", Quantity: 1})
				assert.NoError(t, err)
				ids[i] = o.ID
			}(i)
		}
		wg.Wait()

		sort.Ints(ids)
		for i, id := range ids {
			assert.Equal(t, i, id)
		}

		orders, _ := repo.List(ctx)
		for i, o := range orders {
			assert.Equal(t, i, o.ID, "id must equal position")
		}
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	_, _ = repo.Append(ctx, Order{Student: "alice", Item: "Samosa", Quantity: 3, Status: StatusPending, TotalPrice: 30})

	t.Run("Found", func(t *testing.T) {
		o, err := repo.GetByID(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, "Samosa", o.Item)
	})

	t.Run("Out of range", func(t *testing.T) {
		for _, id := range []int{-1, 1, 100} {
			_, err := repo.GetByID(ctx, id)
			assert.ErrorIs(t, err, ErrOrderNotFound)
		}
	})

	t.Run("Returned order is a copy", func(t *testing.T) {
		o, _ := repo.GetByID(ctx, 0)
		o.Status = StatusDelivered

		again, _ := repo.GetByID(ctx, 0)
		assert.Equal(t, StatusPending, again.Status)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrite", func(t *testing.T) {
		repo := NewRepository()
		_, _ = repo.Append(ctx, Order{Status: StatusPending})

		require.NoError(t, repo.UpdateStatus(ctx, 0, "Cooking", nil))
		o, _ := repo.GetByID(ctx, 0)
		assert.Equal(t, Status("Cooking"), o.Status)
	})

	t.Run("Invalid id is a no-op", func(t *testing.T) {
		repo := NewRepository()
		_, _ = repo.Append(ctx, Order{Status: StatusPending})

		err := repo.UpdateStatus(ctx, 5, StatusAccepted, nil)
		assert.ErrorIs(t, err, ErrOrderNotFound)

		orders, _ := repo.List(ctx)
		assert.Len(t, orders, 1)
		assert.Equal(t, StatusPending, orders[0].Status)
	})

	t.Run("Check rejects", func(t *testing.T) {
		repo := NewRepository()
		_, _ = repo.Append(ctx, Order{Status: StatusPending})

		err := repo.UpdateStatus(ctx, 0, StatusDelivered, strictTransition)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		o, _ := repo.GetByID(ctx, 0)
		assert.Equal(t, StatusPending, o.Status)
	})
}
