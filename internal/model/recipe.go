package model

// Recipe combines ingredient quantities in grams with a serving count.
// Ingredient references may dangle after an ingredient is deleted out from
// under a recipe; nutrition computation skips them.
type Recipe struct {
	Ingredients map[string]float64 `json:"ingredients" validate:"required,min=1,dive,gt=0"`
	Servings    int                `json:"servings" validate:"min=1"`
}
