package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/service"
)

// maxRowErrorsShown caps the per-row error list in import responses.
const maxRowErrorsShown = 5

type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.POST("", h.CreateIngredient)
		ingredients.DELETE("/:name", h.DeleteIngredient)
		ingredients.POST("/import", h.ImportCSV)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	names, ingredients := h.ingredients.List()
	c.JSON(http.StatusOK, gin.H{
		"names":       names,
		"ingredients": ingredients,
		"categories":  model.Categories,
	})
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing := model.Ingredient{
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Calories: req.Calories,
		Category: req.Category,
	}
	if err := h.ingredients.Add(req.Name, ing); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Ingredient created successfully",
		"name":       req.Name,
		"ingredient": ing,
	})
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	name := c.Param("name")
	if err := h.ingredients.Delete(name); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ingredient deleted successfully",
		"name":    name,
	})
}

// ImportCSV accepts a multipart "file" upload with optional "duplicates"
// (skip|overwrite) and "category" form fields.
func (h *IngredientHandler) ImportCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing CSV file upload"})
		return
	}
	defer file.Close()

	policy := service.DuplicatePolicy(c.PostForm("duplicates"))
	switch policy {
	case "", service.DuplicateSkip, service.DuplicateOverwrite:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "duplicates must be skip or overwrite"})
		return
	}

	opts := service.ImportOptions{
		Duplicates:       policy,
		FallbackCategory: c.PostForm("category"),
	}

	result, err := h.ingredients.ImportCSV(file, opts)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	shown := result.RowErrors
	if len(shown) > maxRowErrorsShown {
		shown = shown[:maxRowErrorsShown]
	}
	c.JSON(http.StatusOK, gin.H{
		"imported":   result.Imported,
		"skipped":    result.Skipped,
		"failedRows": len(result.RowErrors),
		"rowErrors":  shown,
	})
}
