package entity

// MaxCategoryTitleLength is the maximum allowed length for category titles.
const MaxCategoryTitleLength = 100

// Category is a named grouping of trackers. The title is the natural
// key: unique across the store, case-sensitive, never empty.
type Category struct {
	Title    string
	Trackers []*Tracker
}

// NewCategory creates an empty category with the given title.
func NewCategory(title string) *Category {
	return &Category{
		Title:    title,
		Trackers: []*Tracker{},
	}
}

// Equal reports identity equality: categories are identified by title.
func (c *Category) Equal(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Title == other.Title
}

// ContainsTracker reports whether a tracker with the given ID is filed
// under this category.
func (c *Category) ContainsTracker(t *Tracker) bool {
	for _, existing := range c.Trackers {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}
