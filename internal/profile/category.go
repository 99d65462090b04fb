package profile

import (
	"strings"

	"github.com/thoreinstein/sysdoc/internal/errors"
)

// Category groups check pairs so a run can select a subset of them.
type Category int

// Check categories.
const (
	CPU Category = iota
	Filesystem
	Memory
	Network
	Performance
)

var categoryNames = [...]string{
	CPU:         "CPU",
	Filesystem:  "FILESYSTEM",
	Memory:      "MEMORY",
	Network:     "NETWORK",
	Performance: "PERFORMANCE",
}

// ErrInvalidCategory indicates an unrecognized category name.
var ErrInvalidCategory = errors.New("invalid category")

// DefaultCategories are selected when the run does not name any.
func DefaultCategories() []Category {
	return []Category{CPU, Filesystem, Memory, Network}
}

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	return []Category{CPU, Filesystem, Memory, Network, Performance}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

// ParseCategory converts a category name, ignoring case.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidCategory, "%q", name)
}

// ParseCategories converts category names. Duplicates are dropped and an
// empty input selects the defaults.
func ParseCategories(names []string) ([]Category, error) {
	if len(names) == 0 {
		return DefaultCategories(), nil
	}

	seen := make(map[Category]bool, len(names))
	out := make([]Category, 0, len(names))
	for _, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}
