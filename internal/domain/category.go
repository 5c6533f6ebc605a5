package domain

import "strings"

// Category is one member of the fixed category set. CategoryAll is a filter
// value only and is never assigned to a task.
type Category string

const (
	CategoryAll      Category = "すべて"
	CategoryWork     Category = "仕事"
	CategoryPrivate  Category = "プライベート"
	CategoryShopping Category = "買い物"
	CategoryOther    Category = "その他"
)

// DefaultNewCategory is preselected for new tasks.
const DefaultNewCategory = CategoryWork

// categories is the closed set in display order. The all sentinel comes first.
var categories = []Category{
	CategoryAll,
	CategoryWork,
	CategoryPrivate,
	CategoryShopping,
	CategoryOther,
}

// categoryAliases lets CLI input name categories in ASCII.
var categoryAliases = map[string]Category{
	"all":      CategoryAll,
	"work":     CategoryWork,
	"private":  CategoryPrivate,
	"shopping": CategoryShopping,
	"other":    CategoryOther,
}

// Categories returns every category, sentinel included, in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// AssignableCategories returns the categories a task may carry.
func AssignableCategories() []Category {
	out := make([]Category, 0, len(categories)-1)
	for _, c := range categories {
		if c != CategoryAll {
			out = append(out, c)
		}
	}
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Assignable reports whether c can be the category of a task.
func (c Category) Assignable() bool {
	return c != CategoryAll && c.Valid()
}

// Alias returns the ASCII alias for c, or "" for unknown categories.
func (c Category) Alias() string {
	for alias, cat := range categoryAliases {
		if cat == c {
			return alias
		}
	}
	return ""
}

func (c Category) String() string { return string(c) }

// ParseCategory resolves user input to a category. It accepts the category
// names themselves and their ASCII aliases (case-insensitive).
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if c := Category(s); c.Valid() {
		return c, true
	}
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c, true
	}
	return "", false
}

// NextCategory returns the category after c in display order, wrapping
// around. With assignableOnly the all sentinel is skipped. Unknown input
// yields the first candidate.
func NextCategory(c Category, assignableOnly bool) Category {
	return stepCategory(c, assignableOnly, 1)
}

// PrevCategory is the reverse of NextCategory.
func PrevCategory(c Category, assignableOnly bool) Category {
	return stepCategory(c, assignableOnly, -1)
}

func stepCategory(c Category, assignableOnly bool, delta int) Category {
	set := categories
	if assignableOnly {
		set = AssignableCategories()
	}
	for i, candidate := range set {
		if candidate == c {
			return set[(i+delta+len(set))%len(set)]
		}
	}
	return set[0]
}
