package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McFlayr/meal-planner/internal/api"
	"github.com/McFlayr/meal-planner/internal/middleware"
)

// SetupRouter configures the application routes.
func SetupRouter(
	ingredientHandler *api.IngredientHandler,
	recipeHandler *api.RecipeHandler,
	planHandler *api.PlanHandler,
	shoppingHandler *api.ShoppingHandler,
	backupHandler *api.BackupHandler,
	corsOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(corsOrigins))
	router.Use(middleware.RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	ingredientHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	planHandler.RegisterRoutes(v1)
	shoppingHandler.RegisterRoutes(v1)
	backupHandler.RegisterRoutes(v1)

	return router
}
