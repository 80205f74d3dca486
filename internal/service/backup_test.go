package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/McFlayr/meal-planner/internal/model"
)

func docWith(ingredients map[string]model.Ingredient, recipes map[string]model.Recipe, meals map[string][]model.ScheduledMeal) *model.Document {
	doc := model.NewDocument()
	for name, ing := range ingredients {
		doc.Ingredients[name] = ing
	}
	for name, recipe := range recipes {
		doc.Recipes[name] = recipe
	}
	for day, list := range meals {
		doc.WeeklyPlan[day] = list
	}
	doc.Normalize()
	return doc
}

func TestMergeReplace(t *testing.T) {
	current := docWith(map[string]model.Ingredient{"Rice": testIngredient(350)}, nil, nil)
	incoming := docWith(map[string]model.Ingredient{"Oats": testIngredient(370)}, nil, nil)

	merged := Merge(current, incoming, MergeReplace)
	assert.NotContains(t, merged.Ingredients, "Rice")
	assert.Contains(t, merged.Ingredients, "Oats")
}

func TestMergeOverwriteTakesIncomingOnCollision(t *testing.T) {
	current := docWith(map[string]model.Ingredient{"Rice": testIngredient(350)}, nil, nil)
	incoming := docWith(map[string]model.Ingredient{"Rice": testIngredient(360), "Oats": testIngredient(370)}, nil, nil)

	merged := Merge(current, incoming, MergeOverwrite)
	assert.Equal(t, 360.0, merged.Ingredients["Rice"].Calories)
	assert.Equal(t, 370.0, merged.Ingredients["Oats"].Calories)
}

func TestMergeKeepNeverOverwrites(t *testing.T) {
	current := docWith(map[string]model.Ingredient{"Rice": testIngredient(350)}, nil, nil)
	incoming := docWith(map[string]model.Ingredient{"Rice": testIngredient(360), "Oats": testIngredient(370)}, nil, nil)

	merged := Merge(current, incoming, MergeKeep)
	assert.Equal(t, 350.0, merged.Ingredients["Rice"].Calories)
	assert.Equal(t, 370.0, merged.Ingredients["Oats"].Calories)
}

func TestMergeOverwriteReplacesMealsAtSameTime(t *testing.T) {
	current := docWith(nil, nil, map[string][]model.ScheduledMeal{
		"Monday": {{Time: "12:00", Recipe: "Old Lunch"}, {Time: "18:00", Recipe: "Dinner"}},
	})
	incoming := docWith(nil, nil, map[string][]model.ScheduledMeal{
		"Monday": {{Time: "12:00", Recipe: "New Lunch"}, {Time: "08:00", Recipe: "Breakfast"}},
	})

	merged := Merge(current, incoming, MergeOverwrite)
	assert.Equal(t, []model.ScheduledMeal{
		{Time: "08:00", Recipe: "Breakfast"},
		{Time: "12:00", Recipe: "New Lunch"},
		{Time: "18:00", Recipe: "Dinner"},
	}, merged.WeeklyPlan["Monday"])
}

func TestMergeKeepSkipsMealsAtTakenTimes(t *testing.T) {
	current := docWith(nil, nil, map[string][]model.ScheduledMeal{
		"Monday": {{Time: "12:00", Recipe: "Old Lunch"}},
	})
	incoming := docWith(nil, nil, map[string][]model.ScheduledMeal{
		"Monday": {{Time: "12:00", Recipe: "New Lunch"}, {Time: "08:00", Recipe: "Breakfast"}},
	})

	merged := Merge(current, incoming, MergeKeep)
	assert.Equal(t, []model.ScheduledMeal{
		{Time: "08:00", Recipe: "Breakfast"},
		{Time: "12:00", Recipe: "Old Lunch"},
	}, merged.WeeklyPlan["Monday"])
}

func TestMergeLeavesInputsUntouched(t *testing.T) {
	current := docWith(map[string]model.Ingredient{"Rice": testIngredient(350)}, nil, nil)
	incoming := docWith(map[string]model.Ingredient{"Rice": testIngredient(360)}, nil, nil)

	Merge(current, incoming, MergeOverwrite)
	assert.Equal(t, 350.0, current.Ingredients["Rice"].Calories)
	assert.Equal(t, 360.0, incoming.Ingredients["Rice"].Calories)
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	svc := NewBackupService(newTestSession(t), nil)
	err := svc.Import([]byte("{broken"), MergeReplace)
	assert.ErrorIs(t, err, ErrMalformedBackup)
}

func TestImportRejectsMissingKeys(t *testing.T) {
	sess := newTestSession(t)
	ingredients := NewIngredientService(sess)
	require.NoError(t, ingredients.Add("Rice", testIngredient(350)))

	svc := NewBackupService(sess, nil)
	err := svc.Import([]byte(`{"ingredients": {}}`), MergeReplace)

	var missing *MissingKeysError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"recipes", "weeklyPlan"}, missing.Keys)

	// No mutation occurred.
	_, err = ingredients.Get("Rice")
	assert.NoError(t, err)
}

func TestImportRejectsUnknownMode(t *testing.T) {
	svc := NewBackupService(newTestSession(t), nil)
	err := svc.Import([]byte(`{"ingredients":{},"recipes":{},"weeklyPlan":{}}`), MergeMode("union"))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestImportReplacePersists(t *testing.T) {
	sess := newTestSession(t)
	ingredients := NewIngredientService(sess)
	svc := NewBackupService(sess, nil)

	backup := `{
		"ingredients": {"Oats": {"protein": 13, "carbohydrates": 58, "fat": 7, "calories": 370, "category": "Grains & Baked Goods"}},
		"recipes": {},
		"weeklyPlan": {"Monday": [{"time": "08:00", "recipe": "Porridge"}]}
	}`
	require.NoError(t, svc.Import([]byte(backup), MergeReplace))

	ing, err := ingredients.Get("Oats")
	require.NoError(t, err)
	assert.Equal(t, 370.0, ing.Calories)
	assert.Equal(t, []model.ScheduledMeal{{Time: "08:00", Recipe: "Porridge"}}, sess.Document().WeeklyPlan["Monday"])
}

func TestImportAcceptsLegacyBackup(t *testing.T) {
	sess := newTestSession(t)
	svc := NewBackupService(sess, nil)

	backup := `{
		"ingredients": {},
		"recipes": {},
		"weeklyPlan": {"Monday": {"Breakfast": "Oats", "Lunch": ""}}
	}`
	require.NoError(t, svc.Import([]byte(backup), MergeReplace))
	assert.Equal(t, []model.ScheduledMeal{{Time: "08:00", Recipe: "Oats"}}, sess.Document().WeeklyPlan["Monday"])
}

func TestExportRoundTrips(t *testing.T) {
	sess := newTestSession(t)
	ingredients := NewIngredientService(sess)
	require.NoError(t, ingredients.Add("Rice", testIngredient(350)))

	svc := NewBackupService(sess, nil)
	data, filename, err := svc.Export(context.Background(), time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "meal-planner-backup-20250314-093000.json", filename)

	var doc model.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc.Ingredients, "Rice")
}
