package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/McFlayr/meal-planner/internal/model"
	"github.com/McFlayr/meal-planner/internal/store"
)

var validate = validator.New()

// IngredientService manages the ingredient set of the document.
type IngredientService struct {
	session *store.Session
}

// NewIngredientService creates a new IngredientService instance.
func NewIngredientService(session *store.Session) *IngredientService {
	return &IngredientService{session: session}
}

// Add creates an ingredient. The name must be unique; numeric values must
// be non-negative; an empty category defaults to "Other".
func (s *IngredientService) Add(name string, ing model.Ingredient) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: ingredient name", ErrMissingField)
	}
	if ing.Category == "" {
		ing.Category = model.CategoryOther
	}
	if !model.ValidCategory(ing.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, ing.Category)
	}
	if err := validate.Struct(ing); err != nil {
		return fmt.Errorf("invalid ingredient values: %w", err)
	}

	doc := s.session.Document()
	if _, exists := doc.Ingredients[name]; exists {
		return fmt.Errorf("%w: ingredient %q", ErrDuplicateName, name)
	}

	doc.Ingredients[name] = ing
	return s.session.Commit()
}

// Delete removes an ingredient. Deletion is rejected while any recipe
// still references the ingredient; the error names those recipes.
func (s *IngredientService) Delete(name string) error {
	doc := s.session.Document()
	if _, exists := doc.Ingredients[name]; !exists {
		return fmt.Errorf("%w: ingredient %q", ErrNotFound, name)
	}

	var usedBy []string
	for recipeName, recipe := range doc.Recipes {
		if _, ok := recipe.Ingredients[name]; ok {
			usedBy = append(usedBy, recipeName)
		}
	}
	if len(usedBy) > 0 {
		sort.Strings(usedBy)
		return fmt.Errorf("%w: %s", ErrIngredientInUse, strings.Join(usedBy, ", "))
	}

	delete(doc.Ingredients, name)
	return s.session.Commit()
}

// Get returns a single ingredient by name.
func (s *IngredientService) Get(name string) (model.Ingredient, error) {
	ing, exists := s.session.Document().Ingredients[name]
	if !exists {
		return model.Ingredient{}, fmt.Errorf("%w: ingredient %q", ErrNotFound, name)
	}
	return ing, nil
}

// List returns all ingredient names in sorted order together with the
// ingredient map.
func (s *IngredientService) List() ([]string, map[string]model.Ingredient) {
	doc := s.session.Document()
	names := make([]string, 0, len(doc.Ingredients))
	for name := range doc.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, doc.Ingredients
}
