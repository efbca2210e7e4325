package catalog

import (
	"slices"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category groups tricks by the kind of move.
type Category string

const (
	CategoryGrabs   Category = "grabs"
	CategorySpins   Category = "spins"
	CategoryFlips   Category = "flips"
	CategoryRails   Category = "rails"
	CategoryJumps   Category = "jumps"
	CategoryButters Category = "butters"

	// CategoryAll is the "no filter" sentinel accepted by ByCategory.
	CategoryAll Category = "all"
)

// AllCategories returns every trick category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryGrabs,
		CategorySpins,
		CategoryFlips,
		CategoryRails,
		CategoryJumps,
		CategoryButters,
	}
}

// Valid reports whether c is one of the defined categories.
// The CategoryAll sentinel is not a valid trick category.
func (c Category) Valid() bool {
	return slices.Contains(AllCategories(), c)
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	if c == CategoryAll {
		return "All"
	}
	return cases.Title(language.English).String(string(c))
}

// Difficulty and risk are rated on a closed 1-5 scale.
const (
	MinRating = 1
	MaxRating = 5
)

// Trick is a single catalog entry.
type Trick struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Difficulty    int      `json:"difficulty"`
	Risk          int      `json:"risk"`
	Category      Category `json:"category"`
	SteezPoints   int      `json:"steezPoints"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Slug returns the URL-safe name of the trick ("Frontside 180" -> "frontside-180").
func (t Trick) Slug() string {
	return slug.Make(t.Name)
}

// HasPrerequisites reports whether the trick depends on any other trick.
func (t Trick) HasPrerequisites() bool {
	return len(t.Prerequisites) > 0
}

// clone returns a copy that shares no memory with t.
func (t Trick) clone() Trick {
	t.Prerequisites = slices.Clone(t.Prerequisites)
	return t
}

// Level is one tier of the leveling table.
type Level struct {
	Number         int    `json:"level"`
	Name           string `json:"name"`
	RequiredPoints int    `json:"requiredPoints"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
}
