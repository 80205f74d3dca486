package model

// Document is the root aggregate and the unit of persistence, backup
// export and backup import. A single process owns one document at a time;
// every mutation is followed by a whole-document save.
type Document struct {
	Ingredients map[string]Ingredient `json:"ingredients"`
	Recipes     map[string]Recipe     `json:"recipes"`
	WeeklyPlan  WeeklyPlan            `json:"weeklyPlan"`
}

// NewDocument returns an empty document with all seven weekday keys
// present.
func NewDocument() *Document {
	plan := make(WeeklyPlan, len(Weekdays))
	for _, day := range Weekdays {
		plan[day] = []ScheduledMeal{}
	}
	return &Document{
		Ingredients: map[string]Ingredient{},
		Recipes:     map[string]Recipe{},
		WeeklyPlan:  plan,
	}
}

// Normalize repairs a decoded or merged document: nil maps become empty
// ones, missing weekday keys are added and each day's meals are re-sorted
// by time.
func (d *Document) Normalize() {
	if d.Ingredients == nil {
		d.Ingredients = map[string]Ingredient{}
	}
	if d.Recipes == nil {
		d.Recipes = map[string]Recipe{}
	}
	if d.WeeklyPlan == nil {
		d.WeeklyPlan = make(WeeklyPlan, len(Weekdays))
	}
	for _, day := range Weekdays {
		if d.WeeklyPlan[day] == nil {
			d.WeeklyPlan[day] = []ScheduledMeal{}
		}
		d.WeeklyPlan.SortDay(day)
	}
}
