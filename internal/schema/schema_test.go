package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointSchema = Schema{
	Name: "test-point",
	Definition: `{
		"type": "object",
		"properties": {
			"x": {"type": "integer", "minimum": 0},
			"label": {"type": "string"}
		},
		"required": ["x"],
		"additionalProperties": false
	}`,
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"x": 3, "label": "a"}`, false},
		{"valid minimal", `{"x": 0}`, false},
		{"missing required", `{"label": "a"}`, true},
		{"negative", `{"x": -1}`, true},
		{"wrong type", `{"x": "3"}`, true},
		{"extra field", `{"x": 1, "y": 2}`, true},
		{"not json", `{x:`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(pointSchema, []byte(tt.raw))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var docErr *DocumentError
			assert.True(t, errors.As(err, &docErr), "want *DocumentError, got %T", err)
			assert.Equal(t, "test-point", docErr.Schema)
		})
	}
}

func TestValidate_BadSchema(t *testing.T) {
	bad := Schema{Name: "test-bad", Definition: `{"type": 12}`}
	err := Validate(bad, []byte(`{}`))
	require.Error(t, err)

	var docErr *DocumentError
	assert.False(t, errors.As(err, &docErr), "schema compile failure should not be a DocumentError")
}

func TestValidate_CachesCompiledSchema(t *testing.T) {
	require.NoError(t, Validate(pointSchema, []byte(`{"x": 1}`)))
	_, ok := cache.Load(pointSchema.Name)
	assert.True(t, ok)
}
