package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/service"
)

type PlanHandler struct {
	plan    *service.PlanService
	recipes *service.RecipeService
}

func NewPlanHandler(plan *service.PlanService, recipes *service.RecipeService) *PlanHandler {
	return &PlanHandler{plan: plan, recipes: recipes}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/plan")
	{
		plan.GET("", h.GetWeek)
		plan.GET("/summary", h.GetSummary)
		plan.DELETE("", h.ClearWeek)
		plan.POST("/:day/meals", h.AddMeal)
		plan.DELETE("/:day/meals/:index", h.RemoveMeal)
		plan.DELETE("/:day", h.ClearDay)
	}
}

// mealView decorates a scheduled meal with its recipe's nutrition and a
// warning when the recipe no longer exists.
type mealView struct {
	Time          string                 `json:"time"`
	Recipe        string                 `json:"recipe"`
	Nutrition     *model.NutritionTotals `json:"nutrition,omitempty"`
	RecipeMissing bool                   `json:"recipeMissing,omitempty"`
}

func (h *PlanHandler) GetWeek(c *gin.Context) {
	week := h.plan.Week()
	_, recipes := h.recipes.List()

	days := make(map[string][]mealView, len(model.Weekdays))
	for _, day := range model.Weekdays {
		meals := make([]mealView, 0, len(week[day]))
		for _, meal := range week[day] {
			view := mealView{Time: meal.Time, Recipe: meal.Recipe}
			if _, exists := recipes[meal.Recipe]; exists {
				if totals, err := h.recipes.Nutrition(meal.Recipe); err == nil {
					view.Nutrition = &totals
				}
			} else {
				view.RecipeMissing = true
			}
			meals = append(meals, view)
		}
		days[day] = meals
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  days,
		"order": model.Weekdays,
	})
}

func (h *PlanHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.plan.Summary())
}

func (h *PlanHandler) AddMeal(c *gin.Context) {
	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day := c.Param("day")
	if err := h.plan.AddMeal(day, req.Time, req.Recipe); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal scheduled successfully",
		"day":     day,
	})
}

func (h *PlanHandler) RemoveMeal(c *gin.Context) {
	day := c.Param("day")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal index must be a number"})
		return
	}

	if err := h.plan.RemoveMeal(day, index); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal removed successfully",
		"day":     day,
	})
}

func (h *PlanHandler) ClearDay(c *gin.Context) {
	day := c.Param("day")
	if err := h.plan.ClearDay(day); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Day cleared successfully",
		"day":     day,
	})
}

func (h *PlanHandler) ClearWeek(c *gin.Context) {
	if err := h.plan.ClearWeek(); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weekly plan cleared successfully"})
}
