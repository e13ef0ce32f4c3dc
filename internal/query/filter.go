package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCalorieRange is returned when caloriesBelow is lower
	// than caloriesAbove.
	ErrInvalidCalorieRange = errors.New("caloriesBelow must not be lower than caloriesAbove")

	// ErrAbsentLimitSource is returned when absentLimit is given
	// without ingredients or fridgeId to match against.
	ErrAbsentLimitSource = errors.New("absentLimit requires ingredients or fridgeId")
)

// RecipeFilter is the parsed and validated form of the recipe search
// query parameters.
type RecipeFilter struct {
	Title         string
	CaloriesAbove *float64
	CaloriesBelow *float64
	IngredientIDs []uint
	AuthorID      *uint
	FridgeID      *uint
	TagIDs        []uint
	AbsentLimit   *int
	Compact       bool
}

// ParseRecipeFilter validates the recognized recipe search parameters.
// Unknown parameters are ignored; empty id lists are treated as absent
// filters. All validation happens here, before any query is issued.
func ParseRecipeFilter(values url.Values) (*RecipeFilter, error) {
	filter := &RecipeFilter{
		Title:   values.Get("title"),
		Compact: values.Get("expanded") == "false",
	}

	var err error
	if filter.CaloriesAbove, err = parseFloat(values, "caloriesAbove"); err != nil {
		return nil, err
	}
	if filter.CaloriesBelow, err = parseFloat(values, "caloriesBelow"); err != nil {
		return nil, err
	}
	if filter.CaloriesAbove != nil && filter.CaloriesBelow != nil &&
		*filter.CaloriesBelow < *filter.CaloriesAbove {
		return nil, ErrInvalidCalorieRange
	}

	if filter.IngredientIDs, err = parseIDList(values, "ingredients"); err != nil {
		return nil, err
	}
	if filter.TagIDs, err = parseIDList(values, "tags"); err != nil {
		return nil, err
	}
	if filter.AuthorID, err = parseID(values, "userId"); err != nil {
		return nil, err
	}
	if filter.FridgeID, err = parseID(values, "fridgeId"); err != nil {
		return nil, err
	}

	if raw := values.Get("absentLimit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("absentLimit must be a non-negative integer, got %q", raw)
		}
		if len(filter.IngredientIDs) == 0 && filter.FridgeID == nil {
			return nil, ErrAbsentLimitSource
		}
		filter.AbsentLimit = &limit
	}

	return filter, nil
}

// AvailableIDs is the set of ingredient ids a recipe's usages are matched
// against in absence-limit mode: the requested ids united with the fridge
// shelf, deduplicated.
func (f *RecipeFilter) AvailableIDs(shelf []uint) []uint {
	seen := make(map[uint]bool, len(f.IngredientIDs)+len(shelf))
	available := make([]uint, 0, len(f.IngredientIDs)+len(shelf))
	for _, id := range f.IngredientIDs {
		if !seen[id] {
			seen[id] = true
			available = append(available, id)
		}
	}
	for _, id := range shelf {
		if !seen[id] {
			seen[id] = true
			available = append(available, id)
		}
	}
	return available
}

func parseFloat(values url.Values, key string) (*float64, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", key, raw)
	}
	return &v, nil
}

func parseID(values url.Values, key string) (*uint, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	id := uint(v)
	return &id, nil
}

func parseIDList(values url.Values, key string) ([]uint, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s must be a comma separated list of ids, got %q", key, raw)
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}
