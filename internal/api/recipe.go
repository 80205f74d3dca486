package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/service"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	ingredients *service.IngredientService
}

func NewRecipeHandler(recipes *service.RecipeService, ingredients *service.IngredientService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, ingredients: ingredients}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:name", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.DELETE("/:name", h.DeleteRecipe)
	}
}

// recipeView decorates a recipe with its computed nutrition, per-serving
// figures and dangling ingredient warnings.
type recipeView struct {
	Name               string                 `json:"name"`
	Ingredients        map[string]float64     `json:"ingredients"`
	Servings           int                    `json:"servings"`
	Nutrition          model.NutritionTotals  `json:"nutrition"`
	PerServing         *model.NutritionTotals `json:"perServing,omitempty"`
	MissingIngredients []string               `json:"missingIngredients,omitempty"`
}

func (h *RecipeHandler) view(name string, recipe model.Recipe) recipeView {
	_, ingredients := h.ingredients.List()
	view := recipeView{
		Name:        name,
		Ingredients: recipe.Ingredients,
		Servings:    recipe.Servings,
		Nutrition:   service.ComputeNutrition(recipe, ingredients),
	}
	if recipe.Servings > 1 {
		perServing := view.Nutrition.Scale(1.0 / float64(recipe.Servings))
		view.PerServing = &perServing
	}
	view.MissingIngredients = service.MissingIngredients(recipe, ingredients)
	return view
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	names, recipes := h.recipes.List()
	views := make([]recipeView, 0, len(names))
	for _, name := range names {
		views = append(views, h.view(name, recipes[name]))
	}
	c.JSON(http.StatusOK, gin.H{"recipes": views})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	name := c.Param("name")
	recipe, err := h.recipes.Get(name)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(name, recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Servings == 0 {
		req.Servings = 1
	}

	recipe := model.Recipe{Ingredients: req.Ingredients, Servings: req.Servings}
	if err := h.recipes.Add(req.Name, recipe); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  h.view(req.Name, recipe),
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	name := c.Param("name")
	if err := h.recipes.Delete(name); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"name":    name,
	})
}
