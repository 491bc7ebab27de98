package services

import (
	"path/filepath"
	"testing"
	"time"

	"restman/entity"
	"restman/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	auth   *AuthService
	dish   *DishTypeService
	ing    *IngredientService
	recipe *RecipeService
	menu   *MenuService
	order  *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.DishType{}, &entity.Ingredient{},
		&entity.Recipe{}, &entity.RecipeIngredient{},
		&entity.Menu{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderSingleItem{},
	))

	userRepo := repository.NewUserRepository(db)
	dtRepo := repository.NewDishTypeRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	return &testEnv{
		db:     db,
		auth:   NewAuthService(userRepo, "test-secret", time.Hour),
		dish:   NewDishTypeService(dtRepo),
		ing:    NewIngredientService(ingRepo),
		recipe: NewRecipeService(db, recipeRepo, dtRepo, ingRepo),
		menu:   NewMenuService(db, menuRepo, recipeRepo),
		order:  NewOrderService(db, orderRepo, menuRepo, recipeRepo),
	}
}

func (e *testEnv) mkDishType(t *testing.T, name string) *entity.DishType {
	t.Helper()
	dt, err := e.dish.Create(name)
	require.NoError(t, err)
	return dt
}

func (e *testEnv) mkIngredient(t *testing.T, name string) *entity.Ingredient {
	t.Helper()
	ing, err := e.ing.Create(name)
	require.NoError(t, err)
	return ing
}

func (e *testEnv) mkRecipe(t *testing.T, name string, price float64, dishTypeID uint) *entity.Recipe {
	t.Helper()
	recipe, err := e.recipe.Create(&RecipeIn{Name: name, Price: price, DishTypeID: dishTypeID})
	require.NoError(t, err)
	return recipe
}

func (e *testEnv) mkMenu(t *testing.T, name string, price float64) *entity.Menu {
	t.Helper()
	menu, err := e.menu.Create(&MenuIn{Name: name, Price: price})
	require.NoError(t, err)
	return menu
}

func (e *testEnv) mkOrder(t *testing.T, userID uint) *entity.Order {
	t.Helper()
	order, err := e.order.Create(userID)
	require.NoError(t, err)
	return order
}
