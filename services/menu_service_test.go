package services

import (
	"testing"

	"restman/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Menu linking does not merge: two adds of the same recipe leave two rows.
// This is asymmetric with order lines and pinned deliberately.
func TestAddRecipeToMenuDoesNotDedupe(t *testing.T) {
	e := newTestEnv(t)
	dt := e.mkDishType(t, "Main Dish")
	recipe := e.mkRecipe(t, "Paella", 11, dt.ID)
	menu := e.mkMenu(t, "Specials", 25)

	require.NoError(t, e.menu.AddRecipe(menu.ID, recipe.ID))
	require.NoError(t, e.menu.AddRecipe(menu.ID, recipe.ID))

	view, err := e.menu.View(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{recipe.ID, recipe.ID}, view.RecipeIDs)
}

func TestAddRecipeToMenuValidatesBothSides(t *testing.T) {
	e := newTestEnv(t)
	dt := e.mkDishType(t, "Main Dish")
	recipe := e.mkRecipe(t, "Paella", 11, dt.ID)
	menu := e.mkMenu(t, "Specials", 25)

	err := e.menu.AddRecipe(404, recipe.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "menu")

	err = e.menu.AddRecipe(menu.ID, 404)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "recipe")

	view, err := e.menu.View(menu.ID)
	require.NoError(t, err)
	assert.Empty(t, view.RecipeIDs)
}

func TestRemoveRecipeFromMenuRemovesOneRow(t *testing.T) {
	e := newTestEnv(t)
	dt := e.mkDishType(t, "Main Dish")
	recipe := e.mkRecipe(t, "Paella", 11, dt.ID)
	menu := e.mkMenu(t, "Specials", 25)
	require.NoError(t, e.menu.AddRecipe(menu.ID, recipe.ID))
	require.NoError(t, e.menu.AddRecipe(menu.ID, recipe.ID))

	require.NoError(t, e.menu.RemoveRecipe(menu.ID, recipe.ID))

	view, err := e.menu.View(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{recipe.ID}, view.RecipeIDs, "only the first row goes")

	require.NoError(t, e.menu.RemoveRecipe(menu.ID, recipe.ID))
	err = e.menu.RemoveRecipe(menu.ID, recipe.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Contains(t, err.Error(), "item")
}

func TestMenuCRUD(t *testing.T) {
	e := newTestEnv(t)

	menu := e.mkMenu(t, "Brunch", 18)
	got, err := e.menu.Get(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brunch", got.Name)

	updated, err := e.menu.Update(menu.ID, &MenuIn{Name: "Late Brunch", Price: 19})
	require.NoError(t, err)
	assert.Equal(t, "Late Brunch", updated.Name)
	assert.Equal(t, 19.0, updated.Price)

	_, err = e.menu.Update(9999, &MenuIn{Name: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = e.menu.Update(menu.ID, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	require.NoError(t, e.menu.Delete(menu.ID))
	_, err = e.menu.Get(menu.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
