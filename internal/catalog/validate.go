package catalog

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// Validate performs all structural checks on a trick set and level table.
// Returns a *ValidationError describing all problems found, or nil if valid.
func Validate(tricks []Trick, levels []Level) error {
	problems := validateTricks(tricks)
	problems = append(problems, validateLevels(levels)...)
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateTricks(tricks []Trick) []string {
	var errs []string

	idSet := make(map[string]bool, len(tricks))
	slugs := make(map[string]string, len(tricks))

	for _, t := range tricks {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("trick %q has an empty ID", t.Name))
			continue
		}
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate trick ID: %q", t.ID))
		}
		idSet[t.ID] = true

		s := t.Slug()
		if other, ok := slugs[s]; ok && other != t.ID {
			errs = append(errs, fmt.Sprintf("tricks %q and %q share the slug %q", other, t.ID, s))
		}
		slugs[s] = t.ID

		if t.Difficulty < MinRating || t.Difficulty > MaxRating {
			errs = append(errs, fmt.Sprintf("trick %q: difficulty must be in [%d, %d], got %d", t.ID, MinRating, MaxRating, t.Difficulty))
		}
		if t.Risk < MinRating || t.Risk > MaxRating {
			errs = append(errs, fmt.Sprintf("trick %q: risk must be in [%d, %d], got %d", t.ID, MinRating, MaxRating, t.Risk))
		}
		if !t.Category.Valid() {
			errs = append(errs, fmt.Sprintf("trick %q: unknown category %q", t.ID, t.Category))
		}
		if t.SteezPoints < 0 {
			errs = append(errs, fmt.Sprintf("trick %q: steez points must be >= 0, got %d", t.ID, t.SteezPoints))
		}
	}

	// Dangling prerequisites
	for _, t := range tricks {
		for _, prereqID := range t.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("trick %q references nonexistent prerequisite %q", t.ID, prereqID))
			}
		}
	}

	// Cycles, using Kahn's algorithm. Only edges to known tricks count.
	inDegree := make(map[string]int, len(tricks))
	adjList := make(map[string][]string)
	for _, t := range tricks {
		inDegree[t.ID] = 0
	}
	for _, t := range tricks {
		for _, prereqID := range t.Prerequisites {
			if !idSet[prereqID] {
				continue
			}
			inDegree[t.ID]++
			adjList[prereqID] = append(adjList[prereqID], t.ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(inDegree) {
		var cycleNodes []string
		seen := make(map[string]bool)
		for _, t := range tricks {
			if inDegree[t.ID] > 0 && !seen[t.ID] {
				cycleNodes = append(cycleNodes, t.ID)
				seen[t.ID] = true
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle detected involving tricks: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(tricks) > 0 {
		hasRoot := false
		for _, t := range tricks {
			if !t.HasPrerequisites() {
				hasRoot = true
				break
			}
		}
		if !hasRoot {
			errs = append(errs, "no root tricks found (at least one trick must have no prerequisites)")
		}
	}

	return errs
}

func validateLevels(levels []Level) []string {
	if len(levels) == 0 {
		return []string{"level table is empty"}
	}

	var errs []string
	first := levels[0]
	if first.Number != 1 {
		errs = append(errs, fmt.Sprintf("first level must be number 1, got %d", first.Number))
	}
	if first.RequiredPoints != 0 {
		errs = append(errs, fmt.Sprintf("level %d must require 0 points, got %d", first.Number, first.RequiredPoints))
	}

	seen := make(map[int]bool, len(levels))
	for i, l := range levels {
		if seen[l.Number] {
			errs = append(errs, fmt.Sprintf("duplicate level number: %d", l.Number))
		}
		seen[l.Number] = true

		if i == 0 {
			continue
		}
		prev := levels[i-1]
		if l.Number != prev.Number+1 {
			errs = append(errs, fmt.Sprintf("level %d follows level %d: level numbers must increase by exactly 1", l.Number, prev.Number))
		}
		if l.RequiredPoints <= prev.RequiredPoints {
			errs = append(errs, fmt.Sprintf("level %d requires %d points, not more than level %d (%d)",
				l.Number, l.RequiredPoints, prev.Number, prev.RequiredPoints))
		}
	}
	return errs
}
