// Package migrate converts persisted documents from the legacy weekly
// plan shape (day -> meal-slot map) to the current shape (day -> ordered
// meal list). It runs once per load; callers persist the result so later
// loads skip it.
package migrate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/McFlayr/meal-planner/internal/model"
)

// slotTimes maps legacy meal-slot names to the time they are scheduled at
// in the current format.
var slotTimes = map[string]string{
	"Breakfast": "08:00",
	"Lunch":     "12:00",
	"Snacks":    "15:00",
	"Dinner":    "18:00",
}

// defaultSlotTime is used for slot names not in slotTimes.
const defaultSlotTime = "12:00"

// rawDocument defers weekly plan decoding so the legacy shape can be
// detected before committing to a type.
type rawDocument struct {
	Ingredients map[string]model.Ingredient `json:"ingredients"`
	Recipes     map[string]model.Recipe     `json:"recipes"`
	WeeklyPlan  map[string]json.RawMessage  `json:"weeklyPlan"`
}

// Parse decodes a persisted document, migrating the weekly plan from the
// legacy shape if needed. The returned bool is true when a migration
// happened and the caller should persist the result immediately. Empty
// input yields a fresh document.
func Parse(raw []byte) (*model.Document, bool, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return model.NewDocument(), false, nil
	}

	var rd rawDocument
	if err := json.Unmarshal(raw, &rd); err != nil {
		return nil, false, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &model.Document{
		Ingredients: rd.Ingredients,
		Recipes:     rd.Recipes,
		WeeklyPlan:  model.WeeklyPlan{},
	}

	legacy := isLegacyPlan(rd.WeeklyPlan)
	for day, rawMeals := range rd.WeeklyPlan {
		if legacy {
			meals, err := convertDay(rawMeals)
			if err != nil {
				return nil, false, fmt.Errorf("failed to migrate day %s: %w", day, err)
			}
			doc.WeeklyPlan[day] = meals
			continue
		}
		var meals []model.ScheduledMeal
		if err := json.Unmarshal(rawMeals, &meals); err != nil {
			return nil, false, fmt.Errorf("failed to parse meals for %s: %w", day, err)
		}
		doc.WeeklyPlan[day] = meals
	}

	doc.Normalize()
	return doc, legacy, nil
}

// isLegacyPlan inspects the first day value: a JSON object means the whole
// plan is in the legacy slot-map shape, an array means it is current.
func isLegacyPlan(plan map[string]json.RawMessage) bool {
	for _, rawMeals := range plan {
		trimmed := bytes.TrimSpace(rawMeals)
		if len(trimmed) == 0 || trimmed[0] == 'n' { // null
			continue
		}
		return trimmed[0] == '{'
	}
	return false
}

// convertDay rewrites one legacy slot map into a time-sorted meal list,
// dropping slots without a recipe.
func convertDay(rawMeals json.RawMessage) ([]model.ScheduledMeal, error) {
	var slots map[string]string
	if err := json.Unmarshal(rawMeals, &slots); err != nil {
		return nil, err
	}

	meals := make([]model.ScheduledMeal, 0, len(slots))
	for slot, recipe := range slots {
		if recipe == "" {
			continue
		}
		at, ok := slotTimes[slot]
		if !ok {
			at = defaultSlotTime
		}
		meals = append(meals, model.ScheduledMeal{Time: at, Recipe: recipe})
	}

	sort.Slice(meals, func(i, j int) bool {
		if meals[i].Time != meals[j].Time {
			return meals[i].Time < meals[j].Time
		}
		return meals[i].Recipe < meals[j].Recipe
	})
	return meals, nil
}
