package catalog

import (
	"cmp"
	"slices"
)

// Catalog holds the trick DAG and the level table with precomputed indices.
// A Catalog is immutable once built; every accessor returns copies.
type Catalog struct {
	version    string
	tricks     []Trick
	ordered    []Trick
	byID       map[string]int
	bySlug     map[string]int
	dependents map[string][]string
	levels     []Level
}

// build constructs the indices for an already validated trick set and level table.
func build(version string, tricks []Trick, levels []Level) *Catalog {
	c := &Catalog{
		version:    version,
		tricks:     make([]Trick, len(tricks)),
		byID:       make(map[string]int, len(tricks)),
		bySlug:     make(map[string]int, len(tricks)),
		dependents: make(map[string][]string),
		levels:     slices.Clone(levels),
	}

	for i := range tricks {
		c.tricks[i] = tricks[i].clone()
		c.byID[tricks[i].ID] = i
		c.bySlug[tricks[i].Slug()] = i
	}

	// Reverse edges, in catalog order
	for _, t := range c.tricks {
		for _, prereqID := range t.Prerequisites {
			c.dependents[prereqID] = append(c.dependents[prereqID], t.ID)
		}
	}

	// Progression order: difficulty, then risk. Stable so that ties keep catalog order.
	c.ordered = slices.Clone(c.tricks)
	slices.SortStableFunc(c.ordered, func(a, b Trick) int {
		if d := cmp.Compare(a.Difficulty, b.Difficulty); d != 0 {
			return d
		}
		return cmp.Compare(a.Risk, b.Risk)
	})

	return c
}

// Version returns the catalog document version.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of tricks in the catalog.
func (c *Catalog) Len() int {
	return len(c.tricks)
}

// All returns every trick in catalog (document) order.
func (c *Catalog) All() []Trick {
	return cloneTricks(c.tricks)
}

// Ordered returns every trick sorted ascending by difficulty, then risk.
// Tricks with equal difficulty and risk keep their catalog order.
func (c *Catalog) Ordered() []Trick {
	return cloneTricks(c.ordered)
}

// ByCategory returns the ordered catalog restricted to one category.
// CategoryAll returns the whole ordered catalog; unknown categories yield an empty slice.
func (c *Catalog) ByCategory(category Category) []Trick {
	if category == CategoryAll {
		return c.Ordered()
	}
	result := []Trick{}
	for _, t := range c.ordered {
		if t.Category == category {
			result = append(result, t.clone())
		}
	}
	return result
}

// Lookup returns the trick with the given ID.
func (c *Catalog) Lookup(id string) (Trick, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Trick{}, false
	}
	return c.tricks[i].clone(), true
}

// LookupSlug returns the trick whose name slug matches s.
func (c *Catalog) LookupSlug(s string) (Trick, bool) {
	i, ok := c.bySlug[s]
	if !ok {
		return Trick{}, false
	}
	return c.tricks[i].clone(), true
}

// Resolve finds a trick by ID first, then by name slug.
func (c *Catalog) Resolve(ref string) (Trick, bool) {
	if t, ok := c.Lookup(ref); ok {
		return t, true
	}
	return c.LookupSlug(ref)
}

// Prerequisites returns the direct prerequisite tricks of id, in declared order.
func (c *Catalog) Prerequisites(id string) []Trick {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	prereqs := c.tricks[i].Prerequisites
	result := make([]Trick, 0, len(prereqs))
	for _, prereqID := range prereqs {
		if t, ok := c.Lookup(prereqID); ok {
			result = append(result, t)
		}
	}
	return result
}

// PrerequisiteNames returns the names of the trick's prerequisites in declared order.
// IDs missing from the catalog are skipped.
func (c *Catalog) PrerequisiteNames(t Trick) []string {
	names := make([]string, 0, len(t.Prerequisites))
	for _, id := range t.Prerequisites {
		if p, ok := c.Lookup(id); ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// Dependents returns the tricks that directly list id as a prerequisite.
func (c *Catalog) Dependents(id string) []Trick {
	ids := c.dependents[id]
	result := make([]Trick, 0, len(ids))
	for _, depID := range ids {
		if t, ok := c.Lookup(depID); ok {
			result = append(result, t)
		}
	}
	return result
}

// Levels returns the level table in ascending order.
func (c *Catalog) Levels() []Level {
	return slices.Clone(c.levels)
}

// LevelByNumber returns the level with the given number.
func (c *Catalog) LevelByNumber(n int) (Level, bool) {
	for _, l := range c.levels {
		if l.Number == n {
			return l, true
		}
	}
	return Level{}, false
}

func cloneTricks(tricks []Trick) []Trick {
	result := make([]Trick, len(tricks))
	for i := range tricks {
		result[i] = tricks[i].clone()
	}
	return result
}
