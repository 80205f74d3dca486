package model

// CategoryOther is the fallback category for ingredients without one.
const CategoryOther = "Other"

// Categories is the fixed set of ingredient categories.
var Categories = []string{
	"Fruit & Vegetables",
	"Meat & Fish",
	"Dairy",
	"Grains & Baked Goods",
	"Legumes",
	"Oils & Fats",
	"Spices & Sauces",
	CategoryOther,
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Ingredient holds macro-nutrient values per 100g of the ingredient.
// Ingredients are keyed by name in the document and never mutated in
// place; editing is delete and recreate.
type Ingredient struct {
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbohydrates" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Category string  `json:"category"`
}

// PerHundredGrams returns the ingredient's values as nutrition totals.
func (i Ingredient) PerHundredGrams() NutritionTotals {
	return NutritionTotals{
		Protein:  i.Protein,
		Carbs:    i.Carbs,
		Fat:      i.Fat,
		Calories: i.Calories,
	}
}
