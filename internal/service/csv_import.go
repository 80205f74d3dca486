package service

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/McFlayr/meal-planner/internal/model"
)

// DuplicatePolicy decides what happens when an imported ingredient name
// already exists in the document.
type DuplicatePolicy string

const (
	DuplicateSkip      DuplicatePolicy = "skip"
	DuplicateOverwrite DuplicatePolicy = "overwrite"
)

// ImportOptions configures a CSV ingredient import.
type ImportOptions struct {
	// Duplicates selects the handling of already-existing names.
	// Defaults to DuplicateSkip.
	Duplicates DuplicatePolicy
	// FallbackCategory is assigned to rows without a category column or
	// with an empty category cell. Defaults to "Other".
	FallbackCategory string
}

// ImportResult summarizes a CSV ingredient import. Valid rows commit even
// when other rows fail; RowErrors lists every failed row.
type ImportResult struct {
	Imported  int      `json:"imported"`
	Skipped   int      `json:"skipped"`
	RowErrors []string `json:"rowErrors,omitempty"`
}

// MissingColumnsError rejects a CSV import whose header lacks required
// columns. Nothing is imported in that case.
type MissingColumnsError struct {
	Columns []string
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// columnAliases maps normalized header cells to canonical column names.
// The German spellings come from the tabular interface contract.
var columnAliases = map[string]string{
	"name":          "name",
	"protein":       "protein",
	"kohlenhydrate": "carbohydrates",
	"carbohydrates": "carbohydrates",
	"carbs":         "carbohydrates",
	"fette":         "fat",
	"fett":          "fat",
	"fat":           "fat",
	"kcal":          "calories",
	"kalorien":      "calories",
	"calories":      "calories",
	"kategorie":     "category",
	"category":      "category",
}

var requiredColumns = []string{"name", "protein", "carbohydrates", "fat", "calories"}

// ImportCSV reads a delimited ingredient table and adds the valid rows to
// the document. The delimiter is auto-detected from the header line
// (semicolon or comma), headers are case-insensitive and trimmed, and
// per-row numeric failures are collected without aborting the import.
func (s *IngredientService) ImportCSV(r io.Reader, opts ImportOptions) (*ImportResult, error) {
	if opts.Duplicates == "" {
		opts.Duplicates = DuplicateSkip
	}
	if opts.FallbackCategory == "" {
		opts.FallbackCategory = model.CategoryOther
	}
	if !model.ValidCategory(opts.FallbackCategory) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, opts.FallbackCategory)
	}

	buffered := bufio.NewReader(r)
	header, err := buffered.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	firstLine := string(header)
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}

	reader := csv.NewReader(buffered)
	reader.TrimLeadingSpace = true
	if strings.Contains(firstLine, ";") {
		reader.Comma = ';'
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	columns, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	doc := s.session.Document()
	result := &ImportResult{}
	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, after the header
		ing, name, err := parseRow(record, columns, opts.FallbackCategory)
		if err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if _, exists := doc.Ingredients[name]; exists && opts.Duplicates == DuplicateSkip {
			result.Skipped++
			continue
		}
		doc.Ingredients[name] = ing
		result.Imported++
	}

	if result.Imported > 0 {
		if err := s.session.Commit(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// resolveColumns maps canonical column names to their index in the header
// row, rejecting the import when required columns are absent.
func resolveColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	var found []string
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		found = append(found, normalized)
		if canonical, ok := columnAliases[normalized]; ok {
			columns[canonical] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing, Found: found}
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int, fallbackCategory string) (model.Ingredient, string, error) {
	cell := func(col string) string {
		idx, ok := columns[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := cell("name")
	if name == "" {
		return model.Ingredient{}, "", fmt.Errorf("empty name")
	}

	var ing model.Ingredient
	for _, field := range []struct {
		col  string
		dest *float64
	}{
		{"protein", &ing.Protein},
		{"carbohydrates", &ing.Carbs},
		{"fat", &ing.Fat},
		{"calories", &ing.Calories},
	} {
		value, err := strconv.ParseFloat(strings.ReplaceAll(cell(field.col), ",", "."), 64)
		if err != nil {
			return model.Ingredient{}, "", fmt.Errorf("invalid %s value %q", field.col, cell(field.col))
		}
		if value < 0 {
			return model.Ingredient{}, "", fmt.Errorf("negative %s value", field.col)
		}
		*field.dest = value
	}

	ing.Category = cell("category")
	if ing.Category == "" || !model.ValidCategory(ing.Category) {
		ing.Category = fallbackCategory
	}
	return ing, name, nil
}
