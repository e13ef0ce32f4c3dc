package serializers

import (
	"bytes"
	"encoding/json"

	"foodinfo/internal/models"
)

// TagView is the restricted tag shape embedded in recipes and tag
// category listings.
type TagView struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type UsageView struct {
	ID           uint    `json:"id"`
	Amount       float64 `json:"amount"`
	IngredientID uint    `json:"ingredient_id"`
	MeasureID    uint    `json:"measure_id"`
}

// CompactRecipeFields is the fixed projection used when a recipe list is
// requested with expanded=false.
var CompactRecipeFields = []string{"id", "title", "thumbnail", "author", "tags"}

// recipeFields declares every projectable recipe field, in output order.
var recipeFields = []struct {
	name  string
	value func(*models.Recipe) interface{}
}{
	{"id", func(r *models.Recipe) interface{} { return r.ID }},
	{"title", func(r *models.Recipe) interface{} { return r.Title }},
	{"thumbnail", func(r *models.Recipe) interface{} { return r.Thumbnail }},
	{"portions", func(r *models.Recipe) interface{} { return r.Portions }},
	{"total_time", func(r *models.Recipe) interface{} { return r.TotalTime }},
	{"instructions", func(r *models.Recipe) interface{} { return r.Instructions }},
	{"author", func(r *models.Recipe) interface{} { return r.AuthorID }},
	{"calories", func(r *models.Recipe) interface{} { return r.Calories }},
	{"proteins", func(r *models.Recipe) interface{} { return r.Proteins }},
	{"fats", func(r *models.Recipe) interface{} { return r.Fats }},
	{"carbs", func(r *models.Recipe) interface{} { return r.Carbs }},
	{"tags", func(r *models.Recipe) interface{} { return ProjectTags(r.Tags) }},
	{"ingredients", func(r *models.Recipe) interface{} { return projectUsages(r.Usages) }},
}

// ProjectRecipe renders one recipe as a JSON object containing only the
// allowed fields, in declaration order. A nil allow-list means the full
// projection; unlisted fields are omitted entirely, not emitted as null.
func ProjectRecipe(recipe *models.Recipe, fields []string) (json.RawMessage, error) {
	var allowed map[string]bool
	if fields != nil {
		allowed = make(map[string]bool, len(fields))
		for _, f := range fields {
			allowed[f] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, field := range recipeFields {
		if allowed != nil && !allowed[field.name] {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		buf.WriteByte('"')
		buf.WriteString(field.name)
		buf.WriteString(`":`)

		value, err := json.Marshal(field.value(recipe))
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// ProjectRecipes renders a recipe list as a JSON array, applying the same
// field allow-list to every element.
func ProjectRecipes(recipes []models.Recipe, fields []string) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range recipes {
		if i > 0 {
			buf.WriteByte(',')
		}
		element, err := ProjectRecipe(&recipes[i], fields)
		if err != nil {
			return nil, err
		}
		buf.Write(element)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// ProjectTags reduces tags to their embedded {id, label} shape.
func ProjectTags(tags []models.Tag) []TagView {
	views := make([]TagView, 0, len(tags))
	for _, tag := range tags {
		views = append(views, TagView{ID: tag.ID, Label: tag.Label})
	}
	return views
}

func projectUsages(usages []models.IngredientUsage) []UsageView {
	views := make([]UsageView, 0, len(usages))
	for _, usage := range usages {
		views = append(views, UsageView{
			ID:           usage.ID,
			Amount:       usage.Amount,
			IngredientID: usage.IngredientID,
			MeasureID:    usage.MeasureID,
		})
	}
	return views
}
