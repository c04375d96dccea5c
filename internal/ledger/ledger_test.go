package ledger

import (
	"errors"
	"testing"

	"pizza-pos/internal/models"
	"pizza-pos/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendIsMostRecentFirst(t *testing.T) {
	l := New()

	l.Append(models.Order{ID: 1, Buyer: "Ana"})
	l.Append(models.Order{ID: 2, Buyer: "Ben"})
	l.Append(models.Order{ID: 3, Buyer: "Cris"})

	orders := l.List()
	require.Len(t, orders, 3)
	assert.Equal(t, int64(3), orders[0].ID)
	assert.Equal(t, int64(1), orders[2].ID)
}

func TestFindByID(t *testing.T) {
	l := New()
	l.Append(models.Order{ID: 42, Buyer: "Walk-in Customer", Total: 47.5252})

	order, err := l.FindByID(42)
	require.NoError(t, err)
	assert.Equal(t, "Walk-in Customer", order.Buyer)
	assert.InDelta(t, 47.5252, order.Total, 1e-9)
}

func TestFindByIDNotFound(t *testing.T) {
	l := New()

	_, err := l.FindByID(7)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestSeedReplacesHistory(t *testing.T) {
	l := New()
	l.Append(models.Order{ID: 1})

	l.Seed([]models.Order{{ID: 9}, {ID: 8}})

	orders := l.List()
	require.Len(t, orders, 2)
	assert.Equal(t, int64(9), orders[0].ID)
}

func TestListReturnsCopy(t *testing.T) {
	l := New()
	l.Append(models.Order{ID: 1, Buyer: "Ana"})

	orders := l.List()
	orders[0].Buyer = "mutated"

	fresh, err := l.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", fresh.Buyer)
}
