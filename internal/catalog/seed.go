package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed data/catalog.json
var embedded []byte

// def is the process-wide default catalog, built once from the embedded tables.
var def *Catalog

func init() {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	def = c
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return def
}

// Ordered returns the embedded catalog in progression order.
func Ordered() []Trick {
	return def.Ordered()
}

// ByCategory returns the embedded tricks in one category, in progression order.
func ByCategory(category Category) []Trick {
	return def.ByCategory(category)
}

// Lookup returns the embedded trick with the given ID.
func Lookup(id string) (Trick, bool) {
	return def.Lookup(id)
}

// Levels returns the embedded level table.
func Levels() []Level {
	return def.Levels()
}
