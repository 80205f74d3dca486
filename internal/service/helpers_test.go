package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/store"
)

func newTestSession(t *testing.T) *store.Session {
	t.Helper()
	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	sess, err := store.Open(fs)
	require.NoError(t, err)
	return sess
}

func testIngredient(calories float64) model.Ingredient {
	return model.Ingredient{
		Protein:  10,
		Carbs:    20,
		Fat:      5,
		Calories: calories,
		Category: model.CategoryOther,
	}
}
