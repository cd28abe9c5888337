package model

import (
	"fmt"
	"strings"
)

// OptionAll is the category/language selection that applies no constraint
const OptionAll = "All"

// SortOrder is the title ordering applied to the displayed channels
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAscending
	SortDescending
)

// String returns the flag spelling of the sort order
func (s SortOrder) String() string {
	switch s {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// Next advances the sort cycle: none -> ascending -> descending -> none
func (s SortOrder) Next() SortOrder {
	switch s {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// ParseSortOrder parses the flag spelling of a sort order
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return SortNone, fmt.Errorf("unsupported sort order: %s", value)
	}
}

// FilterState holds the user-selected criteria narrowing the channel list
type FilterState struct {
	SearchTerm    string    `json:"search_term"`
	Category      string    `json:"category"`
	Language      string    `json:"language"`
	HDOnly        bool      `json:"hd_only"`
	FavoritesOnly bool      `json:"favorites_only"`
	Sort          SortOrder `json:"sort"`
}

// DefaultFilterState returns a state that leaves the channel list untouched
func DefaultFilterState() FilterState {
	return FilterState{
		Category: OptionAll,
		Language: OptionAll,
	}
}

// IsAll reports whether an option value means "no constraint"
func IsAll(option string) bool {
	return option == "" || option == OptionAll
}
