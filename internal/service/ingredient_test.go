package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/McFlayr/meal-planner/internal/model"
)

func TestAddIngredient(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))

	err := svc.Add("Rice", model.Ingredient{Protein: 7, Carbs: 77, Fat: 0.6, Calories: 350, Category: "Grains & Baked Goods"})
	require.NoError(t, err)

	ing, err := svc.Get("Rice")
	require.NoError(t, err)
	assert.Equal(t, 350.0, ing.Calories)
}

func TestAddIngredientDefaultsCategory(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))

	require.NoError(t, svc.Add("Salt", model.Ingredient{}))
	ing, err := svc.Get("Salt")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryOther, ing.Category)
}

func TestAddIngredientRejectsDuplicate(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))

	require.NoError(t, svc.Add("Rice", testIngredient(350)))
	err := svc.Add("Rice", testIngredient(360))
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Original values are untouched.
	ing, err := svc.Get("Rice")
	require.NoError(t, err)
	assert.Equal(t, 350.0, ing.Calories)
}

func TestAddIngredientRejectsUnknownCategory(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))
	err := svc.Add("Rice", model.Ingredient{Category: "Minerals"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAddIngredientRejectsNegativeValues(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))
	err := svc.Add("Rice", model.Ingredient{Protein: -1})
	assert.Error(t, err)
	_, err = svc.Get("Rice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddIngredientRejectsEmptyName(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))
	err := svc.Add("  ", testIngredient(100))
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDeleteIngredientInUse(t *testing.T) {
	sess := newTestSession(t)
	ingredients := NewIngredientService(sess)
	recipes := NewRecipeService(sess)

	require.NoError(t, ingredients.Add("Rice", testIngredient(350)))
	require.NoError(t, recipes.Add("Rice Bowl", model.Recipe{
		Ingredients: map[string]float64{"Rice": 200},
		Servings:    1,
	}))

	err := ingredients.Delete("Rice")
	assert.ErrorIs(t, err, ErrIngredientInUse)
	assert.Contains(t, err.Error(), "Rice Bowl")

	// The ingredient set is unchanged.
	_, err = ingredients.Get("Rice")
	assert.NoError(t, err)
}

func TestDeleteIngredient(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))

	require.NoError(t, svc.Add("Rice", testIngredient(350)))
	require.NoError(t, svc.Delete("Rice"))

	_, err := svc.Get("Rice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIngredientNotFound(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))
	assert.ErrorIs(t, svc.Delete("Ghost"), ErrNotFound)
}

func TestListIngredientsSorted(t *testing.T) {
	svc := NewIngredientService(newTestSession(t))
	require.NoError(t, svc.Add("Zucchini", testIngredient(17)))
	require.NoError(t, svc.Add("Apple", testIngredient(52)))

	names, _ := svc.List()
	assert.Equal(t, []string{"Apple", "Zucchini"}, names)
}
