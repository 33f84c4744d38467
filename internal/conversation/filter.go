package conversation

import (
	"fmt"
	"strings"
)

// Category is a conversation list tab.
type Category int

const (
	All Category = iota
	Groups
	// Unread has no backing attribute yet and filters nothing.
	Unread
)

// Categories lists the tabs in display order.
func Categories() []Category {
	return []Category{All, Groups, Unread}
}

func (c Category) String() string {
	switch c {
	case All:
		return "All"
	case Groups:
		return "Groups"
	case Unread:
		return "Unread"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory parses a tab name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "groups", "group":
		return Groups, nil
	case "unread":
		return Unread, nil
	}
	return All, fmt.Errorf("unknown category %q: must be all, groups or unread", s)
}

// FilterState is the combined tab and search query of the list screen.
type FilterState struct {
	Category Category
	Query    string
}

// WithCategory returns a copy with the tab replaced.
func (f FilterState) WithCategory(c Category) FilterState {
	f.Category = c
	return f
}

// WithQuery returns a copy with the search text replaced.
func (f FilterState) WithQuery(q string) FilterState {
	f.Query = q
	return f
}

// ClearQuery returns a copy with an empty search text.
func (f FilterState) ClearQuery() FilterState {
	f.Query = ""
	return f
}

// Searching reports whether a query is active.
func (f FilterState) Searching() bool {
	return f.Query != ""
}

// ComputeVisible returns the items matching both the category and the query,
// in their original relative order. It never returns nil.
func ComputeVisible(items []Item, state FilterState) []Item {
	needle := strings.ToLower(state.Query)
	visible := make([]Item, 0, len(items))
	for _, it := range items {
		if matchesCategory(it, state.Category) && matchesQuery(it, needle) {
			visible = append(visible, it)
		}
	}
	return visible
}

func matchesCategory(it Item, c Category) bool {
	switch c {
	case Groups:
		return it.IsGroup
	default:
		return true
	}
}

// matchesQuery expects needle already lower-cased.
func matchesQuery(it Item, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.DisplayName), needle) ||
		strings.Contains(strings.ToLower(it.PreviewText), needle)
}
