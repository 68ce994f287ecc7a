package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxShirt() NewItem {
	return NewItem{Name: "Box Shirt Black", Price: "$280", Size: "M", Color: "Black"}
}

func TestItemID(t *testing.T) {
	assert.Equal(t, "Box Shirt Black-M-Black", ItemID("Box Shirt Black", "M", "Black"))
}

func TestCart_AddItem(t *testing.T) {
	t.Run("IdenticalCombinationIncrements", func(t *testing.T) {
		var c Cart
		for i := 0; i < 5; i++ {
			_, err := c.AddItem(boxShirt())
			require.NoError(t, err)
		}

		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
		assert.Equal(t, "Box Shirt Black-M-Black", c.Items[0].ID)
	})

	t.Run("DifferentSizeAppends", func(t *testing.T) {
		var c Cart
		_, err := c.AddItem(boxShirt())
		require.NoError(t, err)

		other := boxShirt()
		other.Size = "L"
		item, err := c.AddItem(other)
		require.NoError(t, err)

		assert.Len(t, c.Items, 2)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("OpensPanel", func(t *testing.T) {
		var c Cart
		assert.False(t, c.IsOpen)
		_, err := c.AddItem(boxShirt())
		require.NoError(t, err)
		assert.True(t, c.IsOpen)
	})

	t.Run("RejectsInvalid", func(t *testing.T) {
		var c Cart
		_, err := c.AddItem(NewItem{Name: "", Price: "$10"})
		assert.ErrorIs(t, err, ErrInvalidItem)

		_, err = c.AddItem(NewItem{Name: "Thing", Price: "priceless"})
		assert.ErrorIs(t, err, ErrInvalidItem)
		assert.Empty(t, c.Items)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("SetsQuantity", func(t *testing.T) {
		var c Cart
		item, _ := c.AddItem(boxShirt())

		require.NoError(t, c.UpdateQuantity(item.ID, 4))
		assert.Equal(t, 4, c.Items[0].Quantity)
	})

	t.Run("ZeroEquivalentToRemove", func(t *testing.T) {
		var updated, removed Cart
		a, _ := updated.AddItem(boxShirt())
		b, _ := removed.AddItem(boxShirt())
		_, _ = updated.AddItem(NewItem{Name: "Wool Scarf", Price: "$120"})
		_, _ = removed.AddItem(NewItem{Name: "Wool Scarf", Price: "$120"})

		require.NoError(t, updated.UpdateQuantity(a.ID, 0))
		removed.RemoveItem(b.ID)

		assert.Equal(t, removed.Items, updated.Items)
		assert.Len(t, updated.Items, 1)
	})

	t.Run("NegativeRemoves", func(t *testing.T) {
		var c Cart
		item, _ := c.AddItem(boxShirt())
		require.NoError(t, c.UpdateQuantity(item.ID, -3))
		assert.True(t, c.IsEmpty())
	})

	t.Run("UnknownID", func(t *testing.T) {
		var c Cart
		assert.ErrorIs(t, c.UpdateQuantity("missing", 2), ErrCartItemNotFound)
	})
}

func TestCart_OpenClose(t *testing.T) {
	var c Cart
	c.Open()
	assert.True(t, c.IsOpen)
	c.Close()
	assert.False(t, c.IsOpen)
}

func TestCart_TotalItems(t *testing.T) {
	var c Cart
	_, _ = c.AddItem(boxShirt())
	_, _ = c.AddItem(boxShirt())
	_, _ = c.AddItem(NewItem{Name: "Casual Tee Grey", Price: "$120", Size: "S", Color: "Grey"})

	assert.Equal(t, 3, c.TotalItems())
}

func TestCart_Totals(t *testing.T) {
	t.Run("ExampleScenario", func(t *testing.T) {
		c := Cart{Items: []Item{
			{ID: "a", Name: "Box Shirt Black", Price: "$280", Quantity: 2},
			{ID: "b", Name: "Casual Tee Grey", Price: "$120", Quantity: 1},
		}}

		totals, err := c.Totals()
		require.NoError(t, err)
		assert.Equal(t, "680", totals.Subtotal.String())
		assert.True(t, totals.Shipping.IsZero())
		assert.Equal(t, "680", totals.Total.String())
	})

	t.Run("Empty", func(t *testing.T) {
		var c Cart
		totals, err := c.Totals()
		require.NoError(t, err)
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("UnparseablePrice", func(t *testing.T) {
		c := Cart{Items: []Item{{ID: "x", Price: "n/a", Quantity: 1}}}
		_, err := c.Totals()
		assert.Error(t, err)
	})
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	_, _ = c.AddItem(boxShirt())
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalItems())
}
