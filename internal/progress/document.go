package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/steezy/steezy/internal/schema"
)

// Document is a user's progress history as exchanged with the CLI.
type Document struct {
	UserID   string              `json:"userId"`
	Progress []UserTrickProgress `json:"progress"`
	Friends  []string            `json:"friends,omitempty"`
}

var documentSchema = schema.Schema{
	Name: "progress",
	Definition: `{
		"type": "object",
		"required": ["userId", "progress"],
		"properties": {
			"userId": {"type": "string", "minLength": 1},
			"friends": {"type": "array", "items": {"type": "string"}, "uniqueItems": true},
			"progress": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["trickId", "comfortLevel", "attempts"],
					"properties": {
						"trickId": {"type": "string", "minLength": 1},
						"userId": {"type": "string"},
						"comfortLevel": {"enum": ["learning", "trying", "comfortable", "mastered"]},
						"attempts": {"type": "integer", "minimum": 0},
						"completedAt": {"type": "string", "format": "date-time"},
						"videoUrl": {"type": "string"}
					},
					"additionalProperties": false
				}
			}
		}
	}`,
}

// Decode validates and decodes a progress document.
// Records without a user ID inherit the document's user; duplicate records
// for the same trick are rejected.
func Decode(raw []byte) (*Document, error) {
	if err := schema.Validate(documentSchema, raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}

	seen := make(map[string]bool, len(doc.Progress))
	for i := range doc.Progress {
		p := &doc.Progress[i]
		if p.UserID == "" {
			p.UserID = doc.UserID
		}
		if p.UserID != doc.UserID {
			return nil, fmt.Errorf("progress for trick %q belongs to user %q, not %q", p.TrickID, p.UserID, doc.UserID)
		}
		if seen[p.TrickID] {
			return nil, fmt.Errorf("duplicate progress record for trick %q", p.TrickID)
		}
		seen[p.TrickID] = true
	}
	return &doc, nil
}

// ReadFile reads and decodes the progress document at path.
func ReadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}
	doc, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("load progress %s: %w", path, err)
	}
	return doc, nil
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return nil
}
