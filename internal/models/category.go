package models

// Category identifies one of the tracked event kinds. Each category is
// persisted in its own table as a full current-state snapshot.
type Category string

const (
	CategoryDiaper Category = "diaper"
	CategorySleep  Category = "sleep"
	CategoryFeed   Category = "feed"
)

// TableName returns the storage table backing the category.
func (c Category) TableName() string {
	switch c {
	case CategoryDiaper:
		return "nappies"
	case CategorySleep:
		return "sleeping"
	case CategoryFeed:
		return "drinking"
	}
	return string(c)
}

// AllCategories lists every tracked category.
func AllCategories() []Category {
	return []Category{CategoryDiaper, CategorySleep, CategoryFeed}
}
