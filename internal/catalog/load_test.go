package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steezy/steezy/internal/schema"
)

const minimalDoc = `{
	"version": "v1.2.0",
	"levels": [
		{"level": 1, "name": "Rookie", "requiredPoints": 0},
		{"level": 2, "name": "Learner", "requiredPoints": 100}
	],
	"tricks": [
		{"id": "ollie", "name": "Ollie", "difficulty": 1, "risk": 1, "category": "jumps", "steezPoints": 50},
		{"id": "shifty", "name": "Shifty", "difficulty": 1, "risk": 2, "category": "spins", "steezPoints": 40, "prerequisites": ["ollie"]}
	]
}`

func TestParse_Minimal(t *testing.T) {
	c, err := Parse([]byte(minimalDoc))
	require.NoError(t, err)

	assert.Equal(t, "v1.2.0", c.Version())
	assert.Equal(t, 2, c.Len())

	shifty, ok := c.Lookup("shifty")
	require.True(t, ok)
	assert.Equal(t, []string{"ollie"}, shifty.Prerequisites)
	assert.Equal(t, CategorySpins, shifty.Category)
}

func TestParse_Embedded(t *testing.T) {
	c, err := Parse(embedded)
	require.NoError(t, err)
	assert.Equal(t, SupportedVersion, c.Version())
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing tricks", `{"version": "v1.0.0", "levels": [{"level": 1, "name": "R", "requiredPoints": 0}]}`},
		{"bad category", `{"version": "v1.0.0", "levels": [{"level": 1, "name": "R", "requiredPoints": 0}],
			"tricks": [{"id": "a", "name": "A", "difficulty": 1, "risk": 1, "category": "moguls", "steezPoints": 1}]}`},
		{"difficulty out of range", `{"version": "v1.0.0", "levels": [{"level": 1, "name": "R", "requiredPoints": 0}],
			"tricks": [{"id": "a", "name": "A", "difficulty": 7, "risk": 1, "category": "jumps", "steezPoints": 1}]}`},
		{"unknown field", `{"version": "v1.0.0", "levels": [{"level": 1, "name": "R", "requiredPoints": 0, "xp": 3}], "tricks": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var docErr *schema.DocumentError
			assert.True(t, errors.As(err, &docErr), "want *schema.DocumentError, got %T: %v", err, err)
		})
	}
}

func TestParse_UnsupportedVersion(t *testing.T) {
	doc := `{"version": "v2.0.0", "levels": [{"level": 1, "name": "R", "requiredPoints": 0}], "tricks": []}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParse_StructuralViolation(t *testing.T) {
	doc := `{"version": "v1.0.0", "levels": [{"level": 1, "name": "R", "requiredPoints": 0}],
		"tricks": [
			{"id": "a", "name": "A", "difficulty": 1, "risk": 1, "category": "jumps", "steezPoints": 1, "prerequisites": ["b"]},
			{"id": "b", "name": "B", "difficulty": 1, "risk": 1, "category": "jumps", "steezPoints": 1, "prerequisites": ["a"]}
		]}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
