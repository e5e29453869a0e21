package entities

import "strings"

// Category is one of the four fixed reputation dimensions. The integer value
// doubles as the index into the category-point, raw-vote, and weight arrays,
// so order and count are load-bearing for persisted data.
type Category uint8

const (
	CategoryGovernance Category = iota
	CategoryDevelopment
	CategoryCommunity
	CategoryTreasury

	CategoryCount = 4
)

func (c Category) Valid() bool {
	return c < CategoryCount
}

func (c Category) Index() int {
	return int(c)
}

func (c Category) String() string {
	switch c {
	case CategoryGovernance:
		return "governance"
	case CategoryDevelopment:
		return "development"
	case CategoryCommunity:
		return "community"
	case CategoryTreasury:
		return "treasury"
	default:
		return "unknown"
	}
}

func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "governance":
		return CategoryGovernance, true
	case "development":
		return CategoryDevelopment, true
	case "community":
		return CategoryCommunity, true
	case "treasury":
		return CategoryTreasury, true
	default:
		return 0, false
	}
}
