package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/store"
)

// RecipeService manages recipes and computes their nutrition values.
type RecipeService struct {
	session *store.Session
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(session *store.Session) *RecipeService {
	return &RecipeService{session: session}
}

// Add creates a recipe from a non-empty ingredient-quantity list and a
// serving count. Ingredient references are not required to exist; a
// dangling reference is tolerated and flagged on display instead.
func (s *RecipeService) Add(name string, recipe model.Recipe) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: recipe name", ErrMissingField)
	}
	if err := validate.Struct(recipe); err != nil {
		return fmt.Errorf("invalid recipe: %w", err)
	}

	doc := s.session.Document()
	if _, exists := doc.Recipes[name]; exists {
		return fmt.Errorf("%w: recipe %q", ErrDuplicateName, name)
	}

	doc.Recipes[name] = recipe
	return s.session.Commit()
}

// Delete removes a recipe. Deletion is rejected while the recipe is still
// scheduled anywhere in the weekly plan; the error lists the occurrences
// as "day (time)".
func (s *RecipeService) Delete(name string) error {
	doc := s.session.Document()
	if _, exists := doc.Recipes[name]; !exists {
		return fmt.Errorf("%w: recipe %q", ErrNotFound, name)
	}

	var scheduled []string
	for _, day := range model.Weekdays {
		for _, meal := range doc.WeeklyPlan[day] {
			if meal.Recipe == name {
				scheduled = append(scheduled, fmt.Sprintf("%s (%s)", day, meal.Time))
			}
		}
	}
	if len(scheduled) > 0 {
		return fmt.Errorf("%w: %s", ErrRecipeScheduled, strings.Join(scheduled, ", "))
	}

	delete(doc.Recipes, name)
	return s.session.Commit()
}

// Get returns a single recipe by name.
func (s *RecipeService) Get(name string) (model.Recipe, error) {
	recipe, exists := s.session.Document().Recipes[name]
	if !exists {
		return model.Recipe{}, fmt.Errorf("%w: recipe %q", ErrNotFound, name)
	}
	return recipe, nil
}

// List returns all recipe names in sorted order together with the recipe
// map.
func (s *RecipeService) List() ([]string, map[string]model.Recipe) {
	doc := s.session.Document()
	names := make([]string, 0, len(doc.Recipes))
	for name := range doc.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, doc.Recipes
}

// ComputeNutrition computes a recipe's total macro values from the current
// ingredient set. Each ingredient contributes its per-100g values scaled
// by grams/100; missing ingredients are skipped without error, so the
// result reflects only ingredients present at computation time.
func ComputeNutrition(recipe model.Recipe, ingredients map[string]model.Ingredient) model.NutritionTotals {
	var total model.NutritionTotals
	for name, grams := range recipe.Ingredients {
		ing, ok := ingredients[name]
		if !ok {
			continue
		}
		total.Add(ing.PerHundredGrams().Scale(grams / 100))
	}
	return total
}

// MissingIngredients returns the sorted names referenced by the recipe
// that no longer exist in the ingredient set. Callers surface these as
// warnings next to the computed nutrition.
func MissingIngredients(recipe model.Recipe, ingredients map[string]model.Ingredient) []string {
	var missing []string
	for name := range recipe.Ingredients {
		if _, ok := ingredients[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Nutrition computes the named recipe's totals against the live document.
func (s *RecipeService) Nutrition(name string) (model.NutritionTotals, error) {
	doc := s.session.Document()
	recipe, exists := doc.Recipes[name]
	if !exists {
		return model.NutritionTotals{}, fmt.Errorf("%w: recipe %q", ErrNotFound, name)
	}
	return ComputeNutrition(recipe, doc.Ingredients), nil
}
