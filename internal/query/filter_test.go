package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, rawQuery string) (*RecipeFilter, error) {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	return ParseRecipeFilter(values)
}

func TestParseRecipeFilterDefaults(t *testing.T) {
	filter, err := parse(t, "")
	require.NoError(t, err)

	assert.Empty(t, filter.Title)
	assert.Nil(t, filter.CaloriesAbove)
	assert.Nil(t, filter.CaloriesBelow)
	assert.Nil(t, filter.IngredientIDs)
	assert.Nil(t, filter.TagIDs)
	assert.Nil(t, filter.AuthorID)
	assert.Nil(t, filter.FridgeID)
	assert.Nil(t, filter.AbsentLimit)
	assert.False(t, filter.Compact)
}

func TestParseRecipeFilterFullQuery(t *testing.T) {
	filter, err := parse(t, "title=soup&caloriesAbove=100&caloriesBelow=500&ingredients=1,2,3&userId=7&fridgeId=4&tags=5,6&absentLimit=2&expanded=false")
	require.NoError(t, err)

	assert.Equal(t, "soup", filter.Title)
	assert.Equal(t, 100.0, *filter.CaloriesAbove)
	assert.Equal(t, 500.0, *filter.CaloriesBelow)
	assert.Equal(t, []uint{1, 2, 3}, filter.IngredientIDs)
	assert.Equal(t, uint(7), *filter.AuthorID)
	assert.Equal(t, uint(4), *filter.FridgeID)
	assert.Equal(t, []uint{5, 6}, filter.TagIDs)
	assert.Equal(t, 2, *filter.AbsentLimit)
	assert.True(t, filter.Compact)
}

func TestParseRecipeFilterInvertedCalorieRange(t *testing.T) {
	_, err := parse(t, "caloriesAbove=500&caloriesBelow=100")
	assert.ErrorIs(t, err, ErrInvalidCalorieRange)

	// Equal bounds are a valid single-value range.
	_, err = parse(t, "caloriesAbove=100&caloriesBelow=100")
	assert.NoError(t, err)
}

func TestParseRecipeFilterCalorieRangeIsNumeric(t *testing.T) {
	// "90" > "500" lexicographically; the comparison must be numeric.
	filter, err := parse(t, "caloriesAbove=90&caloriesBelow=500")
	require.NoError(t, err)
	assert.Equal(t, 90.0, *filter.CaloriesAbove)

	_, err = parse(t, "caloriesAbove=abc")
	assert.Error(t, err)
}

func TestParseRecipeFilterAbsentLimitRequiresSource(t *testing.T) {
	_, err := parse(t, "absentLimit=2")
	assert.ErrorIs(t, err, ErrAbsentLimitSource)

	_, err = parse(t, "absentLimit=2&ingredients=1")
	assert.NoError(t, err)

	_, err = parse(t, "absentLimit=2&fridgeId=1")
	assert.NoError(t, err)

	// An empty ingredient list is an absent filter, not a source.
	_, err = parse(t, "absentLimit=2&ingredients=")
	assert.ErrorIs(t, err, ErrAbsentLimitSource)

	_, err = parse(t, "absentLimit=-1&ingredients=1")
	assert.Error(t, err)

	_, err = parse(t, "absentLimit=two&ingredients=1")
	assert.Error(t, err)
}

func TestParseRecipeFilterIDLists(t *testing.T) {
	filter, err := parse(t, "ingredients=3,1,2")
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 1, 2}, filter.IngredientIDs)

	// Empty lists and stray commas are no-ops.
	filter, err = parse(t, "ingredients=&tags=,")
	require.NoError(t, err)
	assert.Empty(t, filter.IngredientIDs)
	assert.Empty(t, filter.TagIDs)

	_, err = parse(t, "ingredients=1,x")
	assert.Error(t, err)

	_, err = parse(t, "userId=abc")
	assert.Error(t, err)
}

func TestParseRecipeFilterExpanded(t *testing.T) {
	filter, err := parse(t, "expanded=true")
	require.NoError(t, err)
	assert.False(t, filter.Compact)

	// Only the literal "false" selects the compact projection.
	filter, err = parse(t, "expanded=0")
	require.NoError(t, err)
	assert.False(t, filter.Compact)
}

func TestAvailableIDsUnion(t *testing.T) {
	filter := &RecipeFilter{IngredientIDs: []uint{1, 2, 3}}

	assert.Equal(t, []uint{1, 2, 3}, filter.AvailableIDs(nil))
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, filter.AvailableIDs([]uint{2, 4, 5}))

	empty := &RecipeFilter{}
	assert.Equal(t, []uint{7, 8}, empty.AvailableIDs([]uint{7, 8, 7}))
}
