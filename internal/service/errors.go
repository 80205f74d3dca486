package service

import "errors"

// Validation errors. All of them are recoverable: the document is left
// untouched and the caller reports the failure.
var (
	ErrDuplicateName   = errors.New("name already exists")
	ErrMissingField    = errors.New("missing required field")
	ErrNotFound        = errors.New("not found")
	ErrIngredientInUse = errors.New("ingredient is used by existing recipes")
	ErrRecipeScheduled = errors.New("recipe is scheduled in the weekly plan")
	ErrInvalidCategory = errors.New("unknown ingredient category")
	ErrInvalidWeekday  = errors.New("unknown weekday")
	ErrInvalidTime     = errors.New("time must be HH:MM in 24-hour format")
	ErrMalformedBackup = errors.New("backup is not valid JSON")
	ErrInvalidMode     = errors.New("unknown merge mode")
)
