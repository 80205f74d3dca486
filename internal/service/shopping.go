package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/store"
)

// CategoryUnknown groups shopping-list entries whose ingredient no longer
// exists in the document.
const CategoryUnknown = "Unknown"

// ShoppingService derives the consolidated shopping list from the weekly
// plan.
type ShoppingService struct {
	session *store.Session
}

// NewShoppingService creates a new ShoppingService instance.
func NewShoppingService(session *store.Session) *ShoppingService {
	return &ShoppingService{session: session}
}

// Aggregate sums ingredient quantities in grams across every scheduled
// meal whose recipe exists. Quantities are the recipe's full amounts, not
// scaled by servings.
func (s *ShoppingService) Aggregate() map[string]float64 {
	doc := s.session.Document()

	list := make(map[string]float64)
	for _, day := range model.Weekdays {
		for _, meal := range doc.WeeklyPlan[day] {
			recipe, exists := doc.Recipes[meal.Recipe]
			if !exists {
				continue
			}
			for name, grams := range recipe.Ingredients {
				list[name] += grams
			}
		}
	}
	return list
}

// ShoppingItem is one consolidated shopping-list line.
type ShoppingItem struct {
	Name     string  `json:"name"`
	Grams    float64 `json:"grams"`
	Quantity string  `json:"quantity"` // display form per FormatQuantity
}

// ShoppingCategory groups items under an ingredient category.
type ShoppingCategory struct {
	Category string         `json:"category"`
	Items    []ShoppingItem `json:"items"`
}

// Grouped returns the aggregated list grouped by ingredient category and
// sorted by category name, then ingredient name. Ingredients that no
// longer exist fall under the "Unknown" category.
func (s *ShoppingService) Grouped() []ShoppingCategory {
	doc := s.session.Document()
	byCategory := make(map[string][]ShoppingItem)

	for name, grams := range s.Aggregate() {
		category := CategoryUnknown
		if ing, ok := doc.Ingredients[name]; ok {
			category = ing.Category
			if category == "" {
				category = model.CategoryOther
			}
		}
		byCategory[category] = append(byCategory[category], ShoppingItem{
			Name:     name,
			Grams:    grams,
			Quantity: FormatQuantity(grams),
		})
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	grouped := make([]ShoppingCategory, 0, len(categories))
	for _, category := range categories {
		items := byCategory[category]
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		grouped = append(grouped, ShoppingCategory{Category: category, Items: items})
	}
	return grouped
}

// FormatQuantity renders grams for display: two-decimal kilograms from
// 1000g up, whole grams below.
func FormatQuantity(grams float64) string {
	if grams >= 1000 {
		return fmt.Sprintf("%.2f kg", grams/1000)
	}
	return fmt.Sprintf("%.0f g", grams)
}

// ExportText renders the grouped shopping list as a plain-text block with
// uppercase category headers, checkbox lines and a generation timestamp.
func (s *ShoppingService) ExportText(now time.Time) string {
	var b strings.Builder
	b.WriteString("SHOPPING LIST\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, group := range s.Grouped() {
		b.WriteString(strings.ToUpper(group.Category) + "\n")
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for _, item := range group.Items {
			fmt.Fprintf(&b, "☐ %s: %s\n", item.Name, item.Quantity)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nCreated: %s\n", now.Format("02.01.2006 15:04"))
	return b.String()
}
