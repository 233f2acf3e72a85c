package menu

import "slices"

// Collection is the ordered list of dishes on the menu. It is not safe for
// concurrent use; callers that share one must serialize access.
type Collection struct {
	dishes []DishRecord
}

// NewCollection returns an empty menu.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends r to the end of the menu. Validation is the caller's job.
func (c *Collection) Add(r DishRecord) {
	c.dishes = append(c.dishes, r)
}

// Remove deletes the first dish named name and reports whether one was
// found. Later duplicates are left in place.
func (c *Collection) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.dishes = slices.Delete(c.dishes, i, i+1)
	return true
}

// Contains reports whether any dish is named name.
func (c *Collection) Contains(name string) bool {
	return c.index(name) >= 0
}

// Len returns the number of dishes on the menu.
func (c *Collection) Len() int {
	return len(c.dishes)
}

// ListAll returns a copy of every dish in insertion order.
func (c *Collection) ListAll() []DishRecord {
	return slices.Clone(c.dishes)
}

// FilterByCategory returns the dishes that pass f, in insertion order.
func (c *Collection) FilterByCategory(f Filter) []DishRecord {
	if f.IsAll() {
		return c.ListAll()
	}
	out := make([]DishRecord, 0, len(c.dishes))
	for _, d := range c.dishes {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

func (c *Collection) index(name string) int {
	return slices.IndexFunc(c.dishes, func(d DishRecord) bool {
		return d.Name == name
	})
}
