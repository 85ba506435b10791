// Package template holds the static catalog of suggested habit
// configurations used to pre-fill the creation form.
package template

import (
	"sort"
	"strings"

	"github.com/mkenter/habitkeep/internal/model"
)

// Template is a suggested habit configuration.
type Template struct {
	Name           string             `json:"name"`
	Icon           string             `json:"icon"`
	Target         float64            `json:"target"`
	Unit           string             `json:"unit"`
	TrackingType   model.TrackingType `json:"tracking_type"`
	TargetFlexible bool               `json:"is_target_flexible,omitempty"`
	QuickValues    []float64          `json:"quick_values,omitempty"`
	Description    string             `json:"description"`
	Category       string             `json:"category"`
}

var catalog = []Template{
	{
		Name: "Drink Water", Icon: "water", Target: 2000, Unit: "ml",
		TrackingType: model.TrackingQuantity,
		QuickValues:  []float64{250, 500, 750, 1000},
		Description:  "Stay hydrated throughout the day",
		Category:     "Health",
	},
	{
		Name: "Yoga", Icon: "body", Target: 30, Unit: "min",
		TrackingType: model.TrackingDuration, TargetFlexible: true,
		QuickValues: []float64{15, 30, 45, 60},
		Description: "Practice yoga for flexibility and mindfulness",
		Category:    "Fitness",
	},
	{
		Name: "Running", Icon: "walk", Target: 3, Unit: "km",
		TrackingType: model.TrackingQuantity, TargetFlexible: true,
		QuickValues: []float64{1, 3, 5, 10},
		Description: "Go for a run to improve cardiovascular health",
		Category:    "Fitness",
	},
	{
		Name: "Meditation", Icon: "leaf", Target: 10, Unit: "min",
		TrackingType: model.TrackingDuration, TargetFlexible: true,
		QuickValues: []float64{5, 10, 15, 20},
		Description: "Practice mindfulness and reduce stress",
		Category:    "Wellness",
	},
	{
		Name: "Workout", Icon: "fitness", Target: 1, Unit: "session",
		TrackingType: model.TrackingCompletion,
		Description:  "Complete a workout session",
		Category:     "Fitness",
	},
	{
		Name: "Walk", Icon: "walk", Target: 10000, Unit: "steps",
		TrackingType: model.TrackingQuantity, TargetFlexible: true,
		QuickValues: []float64{2500, 5000, 7500, 10000},
		Description: "Take steps for better health",
		Category:    "Fitness",
	},
	{
		Name: "Read", Icon: "book", Target: 30, Unit: "min",
		TrackingType: model.TrackingDuration, TargetFlexible: true,
		QuickValues: []float64{10, 20, 30, 60},
		Description: "Read books to expand your knowledge",
		Category:    "Learning",
	},
	{
		Name: "Journal", Icon: "pencil", Target: 1, Unit: "entry",
		TrackingType: model.TrackingCompletion,
		Description:  "Write down your thoughts and reflections",
		Category:     "Wellness",
	},
	{
		Name: "Practice Language", Icon: "chatbubbles", Target: 15, Unit: "min",
		TrackingType: model.TrackingDuration, TargetFlexible: true,
		QuickValues: []float64{5, 10, 15, 30},
		Description: "Study a new language every day",
		Category:    "Learning",
	},
	{
		Name: "Eat Fruit", Icon: "nutrition", Target: 3, Unit: "servings",
		TrackingType: model.TrackingIncrement,
		QuickValues:  []float64{1},
		Description:  "Add more fruit to your diet",
		Category:     "Health",
	},
	{
		Name: "No Phone Before Bed", Icon: "moon", Target: 1, Unit: "night",
		TrackingType: model.TrackingCompletion,
		Description:  "Wind down without screens",
		Category:     "Wellness",
	},
	{
		Name: "Stretch", Icon: "body", Target: 10, Unit: "min",
		TrackingType: model.TrackingDuration,
		QuickValues:  []float64{5, 10, 15},
		Description:  "Stretch to stay limber and prevent injury",
		Category:     "Fitness",
	},
}

// All returns the full template catalog.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// Categories returns the distinct categories in the catalog, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var categories []string
	for _, t := range catalog {
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// ByCategory returns the templates in a category (case-insensitive).
func ByCategory(category string) []Template {
	var out []Template
	for _, t := range catalog {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the template with the given name (case-insensitive).
func Find(name string) (Template, bool) {
	for _, t := range catalog {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}
