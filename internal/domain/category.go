package domain

import "strings"

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryGifts         Category = "Gifts"
	CategoryRent          Category = "Rent"
	CategorySavings       Category = "Savings"
	CategoryOther         Category = "Other"

	// CategoryNone is the "N/A" placeholder shown when there is nothing to rank.
	// It is never a valid category for an expense.
	CategoryNone Category = "N/A"
)

var categories = []Category{
	CategoryFood, CategoryTransport, CategoryShopping, CategoryUtilities,
	CategoryEntertainment, CategoryHealth, CategoryEducation, CategoryGifts,
	CategoryRent, CategorySavings, CategoryOther,
}

// Categories returns the closed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryUtilities,
		CategoryEntertainment, CategoryHealth, CategoryEducation, CategoryGifts,
		CategoryRent, CategorySavings, CategoryOther:
		return true
	}
	return false
}

// ParseCategory resolves a category name case-insensitively.
// Returns false if the name is not in the closed set.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}
