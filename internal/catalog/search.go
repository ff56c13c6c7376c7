package catalog

import (
	"errors"
	"fmt"
	"strings"

	"tftlookup/internal/domain"
)

// ErrNotFound is returned when no item carries the requested name
var ErrNotFound = errors.New("item not found")

// PrefixSearch returns a search function over src. An empty query matches
// nothing; otherwise names whose lower-cased form starts with the
// lower-cased query are returned in source order
func PrefixSearch(src Source) func(string) []string {
	return func(query string) []string {
		if query == "" {
			return nil
		}

		needle := strings.ToLower(query)
		var matches []string
		for _, name := range src.Names() {
			if strings.HasPrefix(strings.ToLower(name), needle) {
				matches = append(matches, name)
			}
		}
		return matches
	}
}

// Lookup resolves name to an item by case-insensitive exact match. The first
// item in source order wins when several share a name
func Lookup(src Source, name string) (domain.Item, error) {
	for _, item := range src.Items() {
		if strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}
	return domain.Item{}, fmt.Errorf("%q: %w", name, ErrNotFound)
}
