package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data  []byte
	saves int
}

func (m *memStore) Load() ([]byte, error) { return m.data, nil }
func (m *memStore) Save(data []byte) error {
	m.data = data
	m.saves++
	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddAndBumpQuantity(t *testing.T) {
	store := &memStore{}
	c, err := New(store)
	require.NoError(t, err)

	item, err := c.Add(1, price("10.00"), 2)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	// Adding the same product bumps the existing line.
	_, err = c.Add(1, price("10.00"), 1)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestSetQuantityAndRemove(t *testing.T) {
	c, err := New(&memStore{})
	require.NoError(t, err)

	_, _ = c.Add(1, price("5.00"), 1)
	_, _ = c.Add(2, price("3.00"), 1)

	require.NoError(t, c.SetQuantity(1, 5))
	assert.Equal(t, 5, c.Items()[0].Quantity)

	require.NoError(t, c.Remove(2))
	assert.Len(t, c.Items(), 1)

	assert.ErrorIs(t, c.SetQuantity(99, 1), ErrItemNotFound)
}

func TestSubtotal(t *testing.T) {
	c, err := New(&memStore{})
	require.NoError(t, err)

	_, _ = c.Add(1, price("10.00"), 2)
	_, _ = c.Add(2, price("0.55"), 3)

	assert.Equal(t, "21.65", c.Subtotal().StringFixed(2))
}

func TestEveryMutationPersists(t *testing.T) {
	store := &memStore{}
	c, err := New(store)
	require.NoError(t, err)

	_, _ = c.Add(1, price("1.00"), 1)
	_ = c.SetQuantity(1, 2)
	_ = c.Clear()

	assert.Equal(t, 3, store.saves)
}

func TestReloadFromStore(t *testing.T) {
	store := &memStore{}
	c, err := New(store)
	require.NoError(t, err)
	_, _ = c.Add(7, price("2.50"), 4)

	// A fresh cart over the same store sees the saved state.
	reloaded, err := New(store)
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "2.50", items[0].PriceEach.StringFixed(2))
}

func TestCorruptStateIsDropped(t *testing.T) {
	store := &memStore{data: []byte("{not json")}
	c, err := New(store)
	require.NoError(t, err)
	assert.Empty(t, c.Items())
}
