package services

import (
	"testing"
	"time"

	"restman/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderStartsEmptyAndDatedNow(t *testing.T) {
	e := newTestEnv(t)

	before := time.Now()
	order := e.mkOrder(t, 7)

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, uint(7), view.UserID)
	assert.Empty(t, view.Items)
	assert.Empty(t, view.SingleItems)
	assert.False(t, view.OrderDate.Before(before.Add(-time.Second)))
}

func TestCreateOrderRequiresUser(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.order.Create(0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestAddMenuItemMergesQuantity(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Lunch Set", 12.5)
	order := e.mkOrder(t, 1)

	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))
	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "re-adding the same menu must merge, not duplicate")
	assert.Equal(t, menu.ID, view.Items[0].MenuID)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestAddMenuItemScenarioUser7(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Menu Three", 9.0)
	order := e.mkOrder(t, 7)

	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))
	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestRemoveMenuItemRemovesWholeLine(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Dinner Set", 20)
	order := e.mkOrder(t, 1)

	for i := 0; i < 3; i++ {
		require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))
	}
	require.NoError(t, e.order.RemoveMenuItem(order.ID, menu.ID, 0))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items, "removal deletes the line, it does not decrement")
}

func TestRemoveMenuItemDistinguishesMissingItem(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Set", 5)
	order := e.mkOrder(t, 1)

	err := e.order.RemoveMenuItem(order.ID, menu.ID, 0)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "item")

	err = e.order.RemoveMenuItem(9999, menu.ID, 0)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "order")
}

func TestAddMenuItemMissingMenuLeavesOrderUntouched(t *testing.T) {
	e := newTestEnv(t)
	order := e.mkOrder(t, 1)

	err := e.order.AddMenuItem(order.ID, 404, 0)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "menu")

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestSingleItemMergeAndRemoval(t *testing.T) {
	e := newTestEnv(t)
	dt := e.mkDishType(t, "Main Dish")
	recipe := e.mkRecipe(t, "Goulash", 8.0, dt.ID)
	order := e.mkOrder(t, 1)

	require.NoError(t, e.order.AddSingleItem(order.ID, recipe.ID, 0))
	require.NoError(t, e.order.AddSingleItem(order.ID, recipe.ID, 0))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.SingleItems, 1)
	assert.Equal(t, 2, view.SingleItems[0].Quantity)

	require.NoError(t, e.order.RemoveSingleItem(order.ID, recipe.ID, 0))
	view, err = e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.SingleItems)
}

func TestAddSingleItemMissingRecipePreCheck(t *testing.T) {
	e := newTestEnv(t)
	order := e.mkOrder(t, 1)

	err := e.order.AddSingleItem(order.ID, 404, 0)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "recipe")

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.SingleItems, "failed pre-check must not mutate the order")
}

func TestListForUserIsolation(t *testing.T) {
	e := newTestEnv(t)
	e.mkOrder(t, 1)
	e.mkOrder(t, 1)
	e.mkOrder(t, 2)
	e.mkOrder(t, 3)

	orders, err := e.order.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, uint(1), o.UserID)
	}
}

// The total counts each referenced menu's price once per line, not
// multiplied by quantity, and single items never contribute. Historical
// behavior, kept on purpose.
func TestOrderProjectionPriceCountsMenuPriceOncePerLine(t *testing.T) {
	e := newTestEnv(t)
	m1 := e.mkMenu(t, "A", 10.0)
	m2 := e.mkMenu(t, "B", 5.5)
	dt := e.mkDishType(t, "Main Dish")
	recipe := e.mkRecipe(t, "Soup", 3.0, dt.ID)
	order := e.mkOrder(t, 1)

	require.NoError(t, e.order.AddMenuItem(order.ID, m1.ID, 0))
	require.NoError(t, e.order.AddMenuItem(order.ID, m1.ID, 0)) // quantity 2
	require.NoError(t, e.order.AddMenuItem(order.ID, m2.ID, 0)) // quantity 1
	require.NoError(t, e.order.AddSingleItem(order.ID, recipe.ID, 0))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.InDelta(t, 15.5, view.TotalPrice, 1e-9)
}

func TestGetOrderToleratesDanglingMenuReference(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Ghost", 7.0)
	order := e.mkOrder(t, 1)
	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))

	require.NoError(t, e.menu.Delete(menu.ID))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "the line survives a deleted menu")
	assert.Nil(t, view.Items[0].MenuName)
	assert.Nil(t, view.Items[0].Price)
	assert.Zero(t, view.TotalPrice)
}

func TestOrderOwnerScoping(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Set", 5)
	order := e.mkOrder(t, 1)

	_, err := e.order.Get(order.ID, 2)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "foreign orders read as not found")

	err = e.order.AddMenuItem(order.ID, menu.ID, 2)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 1))
}

func TestUpdateOrderDate(t *testing.T) {
	e := newTestEnv(t)
	order := e.mkOrder(t, 1)

	want := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, e.order.UpdateDate(order.ID, 0, want))

	view, err := e.order.Get(order.ID, 0)
	require.NoError(t, err)
	assert.True(t, view.OrderDate.Equal(want))

	err = e.order.UpdateDate(9999, 0, want)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteOrderCascades(t *testing.T) {
	e := newTestEnv(t)
	menu := e.mkMenu(t, "Set", 5)
	dt := e.mkDishType(t, "Main Dish")
	recipe := e.mkRecipe(t, "Stew", 4, dt.ID)
	order := e.mkOrder(t, 1)
	require.NoError(t, e.order.AddMenuItem(order.ID, menu.ID, 0))
	require.NoError(t, e.order.AddSingleItem(order.ID, recipe.ID, 0))

	require.NoError(t, e.order.Delete(order.ID, 0))

	_, err := e.order.Get(order.ID, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = e.order.Delete(order.ID, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
