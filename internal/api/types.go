package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/McFlayr/meal-planner/internal/service"
)

// CreateIngredientRequest is the payload for POST /ingredients. Values
// are per 100g of the ingredient.
type CreateIngredientRequest struct {
	Name     string  `json:"name" binding:"required"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbohydrates" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
	Calories float64 `json:"calories" binding:"gte=0"`
	Category string  `json:"category"`
}

// CreateRecipeRequest is the payload for POST /recipes.
type CreateRecipeRequest struct {
	Name        string             `json:"name" binding:"required"`
	Ingredients map[string]float64 `json:"ingredients" binding:"required"`
	Servings    int                `json:"servings"`
}

// AddMealRequest is the payload for POST /plan/:day/meals.
type AddMealRequest struct {
	Time   string `json:"time" binding:"required"`
	Recipe string `json:"recipe" binding:"required"`
}

// errorStatus maps service errors onto HTTP status codes: conflicts for
// duplicates and in-use deletions, 404 for unresolved names, 400 for the
// rest of the validation taxonomy.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrIngredientInUse),
		errors.Is(err, service.ErrRecipeScheduled):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidWeekday),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrMalformedBackup),
		errors.Is(err, service.ErrInvalidMode):
		return http.StatusBadRequest
	}

	var missingCols *service.MissingColumnsError
	var missingKeys *service.MissingKeysError
	var validation validator.ValidationErrors
	if errors.As(err, &missingCols) || errors.As(err, &missingKeys) || errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
