package routes

import (
	"restman/configs"
	"restman/controllers"
	"restman/middlewares"
	"restman/repository"
	"restman/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	dtRepo := repository.NewDishTypeRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	dtSvc := services.NewDishTypeService(dtRepo)
	ingSvc := services.NewIngredientService(ingRepo)
	recipeSvc := services.NewRecipeService(db, recipeRepo, dtRepo, ingRepo)
	menuSvc := services.NewMenuService(db, menuRepo, recipeRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, recipeRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userRepo)
	dtCtrl := controllers.NewDishTypeController(dtSvc)
	ingCtrl := controllers.NewIngredientController(ingSvc)
	recipeCtrl := controllers.NewRecipeController(recipeSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Catalog reads (public)
	r.GET("/dish-types", dtCtrl.List)
	r.GET("/dish-types/:id", dtCtrl.Get)
	r.GET("/ingredients", ingCtrl.List)
	r.GET("/ingredients/:id", ingCtrl.Get)
	r.GET("/recipes", recipeCtrl.List)
	r.GET("/recipes/:id", recipeCtrl.Get)
	r.GET("/recipes/:id/ingredients", recipeCtrl.Ingredients)
	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/:id", menuCtrl.Get)

	// Catalog mutation (staff only)
	staff := r.Group("/", middlewares.AuthMiddleware("admin", "manager"))
	{
		staff.POST("/dish-types", dtCtrl.Create)
		staff.PATCH("/dish-types/:id", dtCtrl.Update)
		staff.DELETE("/dish-types/:id", dtCtrl.Delete)

		staff.POST("/ingredients", ingCtrl.Create)
		staff.PATCH("/ingredients/:id", ingCtrl.Update)
		staff.DELETE("/ingredients/:id", ingCtrl.Delete)

		staff.POST("/recipes", recipeCtrl.Create)
		staff.PATCH("/recipes/:id", recipeCtrl.Update)
		staff.DELETE("/recipes/:id", recipeCtrl.Delete)
		staff.POST("/recipes/:id/ingredients", recipeCtrl.AddIngredient)
		staff.DELETE("/recipes/:id/ingredients/:ingredientId", recipeCtrl.RemoveIngredient)

		staff.POST("/menus", menuCtrl.Create)
		staff.PATCH("/menus/:id", menuCtrl.Update)
		staff.DELETE("/menus/:id", menuCtrl.Delete)
		staff.POST("/menus/:id/recipes", menuCtrl.AddRecipe)
		staff.DELETE("/menus/:id/recipes/:recipeId", menuCtrl.RemoveRecipe)
	}

	// Orders (any authenticated user; customers are scoped to their own)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Get)
		u.PATCH("/orders/:id", orderCtrl.Update)
		u.DELETE("/orders/:id", orderCtrl.Delete)

		u.POST("/orders/:id/items", orderCtrl.AddItem)
		u.DELETE("/orders/:id/items/:menuId", orderCtrl.RemoveItem)
		u.POST("/orders/:id/single-items", orderCtrl.AddSingleItem)
		u.DELETE("/orders/:id/single-items/:recipeId", orderCtrl.RemoveSingleItem)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/users", userCtrl.List)
		admin.PATCH("/users/:id/role", userCtrl.UpdateRole)
		admin.DELETE("/users/:id", userCtrl.Delete)
	}
}
