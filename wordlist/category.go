package wordlist

import (
	"fmt"
	"strings"
)

// Category is a named bucket of words combined with other categories
type Category string

const (
	Name     Category = "name"
	Initials Category = "initials"
	Years    Category = "years"
	Tags     Category = "tags"
)

// Categories lists every category in canonical order
var Categories = []Category{Name, Initials, Years, Tags}

// ParseCategory returns the category named s (case-insensitive)
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrOrderConflict, s)
}

// ParseOrder parses a comma separated list of categories
func ParseOrder(s string) ([]Category, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	order := make([]Category, 0, len(parts))
	for _, p := range parts {
		c, err := ParseCategory(p)
		if err != nil {
			return nil, err
		}
		order = append(order, c)
	}
	return order, nil
}

func (c Category) String() string {
	return string(c)
}
