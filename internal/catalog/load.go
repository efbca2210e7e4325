package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/steezy/steezy/internal/schema"
)

// SupportedVersion is the catalog document version this build understands.
// Documents with the same major version are accepted.
const SupportedVersion = "v1.0.0"

// ErrUnsupportedVersion indicates a catalog document with an incompatible version.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// document is the on-disk shape of a catalog.
type document struct {
	Version string  `json:"version"`
	Levels  []Level `json:"levels"`
	Tricks  []Trick `json:"tricks"`
}

var documentSchema = schema.Schema{
	Name: "catalog",
	Definition: `{
		"type": "object",
		"required": ["version", "levels", "tricks"],
		"properties": {
			"version": {"type": "string", "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+"},
			"levels": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"required": ["level", "name", "requiredPoints"],
					"properties": {
						"level": {"type": "integer", "minimum": 1},
						"name": {"type": "string", "minLength": 1},
						"requiredPoints": {"type": "integer", "minimum": 0},
						"color": {"type": "string"},
						"icon": {"type": "string"}
					},
					"additionalProperties": false
				}
			},
			"tricks": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["id", "name", "difficulty", "risk", "category", "steezPoints"],
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"name": {"type": "string", "minLength": 1},
						"description": {"type": "string"},
						"difficulty": {"type": "integer", "minimum": 1, "maximum": 5},
						"risk": {"type": "integer", "minimum": 1, "maximum": 5},
						"category": {"enum": ["grabs", "spins", "flips", "rails", "jumps", "butters"]},
						"steezPoints": {"type": "integer", "minimum": 0},
						"prerequisites": {"type": "array", "items": {"type": "string"}}
					},
					"additionalProperties": false
				}
			}
		}
	}`,
}

// Parse decodes, validates and indexes a catalog document.
func Parse(raw []byte) (*Catalog, error) {
	if err := schema.Validate(documentSchema, raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if !semver.IsValid(doc.Version) || semver.Major(doc.Version) != semver.Major(SupportedVersion) {
		return nil, fmt.Errorf("%w: %q (want %s.x.x)", ErrUnsupportedVersion, doc.Version, semver.Major(SupportedVersion))
	}

	if err := Validate(doc.Tricks, doc.Levels); err != nil {
		return nil, err
	}

	return build(doc.Version, doc.Tricks, doc.Levels), nil
}

// Load reads and parses the catalog document at path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// New validates and indexes an in-memory trick set and level table.
func New(tricks []Trick, levels []Level) (*Catalog, error) {
	if err := Validate(tricks, levels); err != nil {
		return nil, err
	}
	return build(SupportedVersion, tricks, levels), nil
}
