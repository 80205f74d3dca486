package model

// NutritionTotals represents accumulated macro-nutrient values.
type NutritionTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbohydrates"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// Add accumulates another set of totals into this one.
func (n *NutritionTotals) Add(other NutritionTotals) {
	n.Protein += other.Protein
	n.Carbs += other.Carbs
	n.Fat += other.Fat
	n.Calories += other.Calories
}

// Scale returns the totals multiplied by factor.
func (n NutritionTotals) Scale(factor float64) NutritionTotals {
	return NutritionTotals{
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Calories: n.Calories * factor,
	}
}
