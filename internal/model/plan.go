package model

import "sort"

// Weekdays lists the seven weekly plan keys in display order. Every
// document carries all seven, with empty meal lists by default.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ValidWeekday reports whether day is one of the seven plan keys.
func ValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduledMeal places a recipe at a time of day. The recipe reference may
// dangle if the recipe was removed through a backup merge.
type ScheduledMeal struct {
	Time   string `json:"time"` // HH:MM, 24-hour
	Recipe string `json:"recipe"`
}

// WeeklyPlan maps each weekday to its ordered meal list. Lists are kept
// sorted ascending by time; lexical order on HH:MM is chronological.
type WeeklyPlan map[string][]ScheduledMeal

// SortDay re-sorts a single day's meals by time.
func (p WeeklyPlan) SortDay(day string) {
	meals := p[day]
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].Time < meals[j].Time
	})
}
