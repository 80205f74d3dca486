package service

import (
	"fmt"
	"regexp"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/store"
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// PlanService manages the weekly plan and derives the weekly summary.
type PlanService struct {
	session *store.Session
}

// NewPlanService creates a new PlanService instance.
func NewPlanService(session *store.Session) *PlanService {
	return &PlanService{session: session}
}

// AddMeal schedules a recipe on a day at the given HH:MM time. Multiple
// meals may share a time; the day list stays sorted ascending by time.
func (s *PlanService) AddMeal(day, at, recipeName string) error {
	if !model.ValidWeekday(day) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}
	if !timePattern.MatchString(at) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, at)
	}

	doc := s.session.Document()
	if _, exists := doc.Recipes[recipeName]; !exists {
		return fmt.Errorf("%w: recipe %q", ErrNotFound, recipeName)
	}

	doc.WeeklyPlan[day] = append(doc.WeeklyPlan[day], model.ScheduledMeal{Time: at, Recipe: recipeName})
	doc.WeeklyPlan.SortDay(day)
	return s.session.Commit()
}

// RemoveMeal deletes the meal at index within a day's sorted list.
func (s *PlanService) RemoveMeal(day string, index int) error {
	if !model.ValidWeekday(day) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}

	doc := s.session.Document()
	meals := doc.WeeklyPlan[day]
	if index < 0 || index >= len(meals) {
		return fmt.Errorf("%w: meal index %d on %s", ErrNotFound, index, day)
	}

	doc.WeeklyPlan[day] = append(meals[:index], meals[index+1:]...)
	return s.session.Commit()
}

// ClearDay removes every meal scheduled on a day.
func (s *PlanService) ClearDay(day string) error {
	if !model.ValidWeekday(day) {
		return fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}
	s.session.Document().WeeklyPlan[day] = []model.ScheduledMeal{}
	return s.session.Commit()
}

// ClearWeek empties the whole weekly plan.
func (s *PlanService) ClearWeek() error {
	doc := s.session.Document()
	for _, day := range model.Weekdays {
		doc.WeeklyPlan[day] = []model.ScheduledMeal{}
	}
	return s.session.Commit()
}

// Week returns the live weekly plan.
func (s *PlanService) Week() model.WeeklyPlan {
	return s.session.Document().WeeklyPlan
}

// WeeklySummary aggregates nutrition across every scheduled meal whose
// recipe still exists.
type WeeklySummary struct {
	Totals    model.NutritionTotals `json:"totals"`
	MealCount int                   `json:"mealCount"`
	// DailyAverage divides the weekly totals by the fixed seven-day week
	// regardless of how many days have meals scheduled. For a partially
	// filled week this understates real daily intake; it is a planning
	// heuristic, kept as such deliberately. Only set when MealCount > 0.
	DailyAverage *model.NutritionTotals `json:"dailyAverage,omitempty"`
}

// Summary computes the weekly nutrition totals. Each scheduled meal
// contributes the full nutrition of its recipe (not a single serving);
// meals whose recipe no longer exists are skipped.
func (s *PlanService) Summary() WeeklySummary {
	doc := s.session.Document()

	var summary WeeklySummary
	for _, day := range model.Weekdays {
		for _, meal := range doc.WeeklyPlan[day] {
			recipe, exists := doc.Recipes[meal.Recipe]
			if !exists {
				continue
			}
			summary.Totals.Add(ComputeNutrition(recipe, doc.Ingredients))
			summary.MealCount++
		}
	}

	if summary.MealCount > 0 {
		avg := summary.Totals.Scale(1.0 / 7.0)
		summary.DailyAverage = &avg
	}
	return summary
}
