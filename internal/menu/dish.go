package menu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
)

// Category is a course on the menu. The set is closed.
type Category string

const (
	Starters Category = "Starters"
	Mains    Category = "Mains"
	Desserts Category = "Desserts"
)

// Categories returns every course in display order.
func Categories() []Category {
	return []Category{Starters, Mains, Desserts}
}

// ParseCategory matches s against the known courses, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) String() string {
	return string(c)
}

// Filter selects which dishes a listing returns: a single course or All.
type Filter struct {
	category Category
}

// All matches every dish.
var All = Filter{}

// ByCategory returns a filter matching only dishes of c.
func ByCategory(c Category) Filter {
	return Filter{category: c}
}

// ParseFilter accepts "All" (or an empty string) and any course name.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return All, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return Filter{}, err
	}
	return ByCategory(c), nil
}

// IsAll reports whether the filter matches every dish.
func (f Filter) IsAll() bool {
	return f.category == ""
}

// Matches reports whether d passes the filter.
func (f Filter) Matches(d DishRecord) bool {
	return f.IsAll() || d.Category == f.category
}

func (f Filter) String() string {
	if f.IsAll() {
		return "All"
	}
	return string(f.category)
}

// DishRecord is one menu entry. Price is kept as the text the chef typed.
type DishRecord struct {
	Name        string
	Description string
	Category    Category
	Price       string
}

// DisplayPrice formats the record's price for display. Unparseable text
// shows as zero.
func (d DishRecord) DisplayPrice() string {
	return FormatPrice(lenientPrice(d.Price))
}
