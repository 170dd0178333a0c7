package client

import (
	"sort"
	"strings"

	"failfund/models"
)

type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortMostViewed   SortOrder = "most-viewed"
	SortHighestScore SortOrder = "highest-score"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// BrowseFilters is the browse-page state: it filters and sorts the full
// fetched collection locally, without server-side pagination.
type BrowseFilters struct {
	Search    string
	Category  string
	TechStack []string
	Sort      SortOrder
}

func NewBrowseFilters() BrowseFilters {
	return BrowseFilters{
		Category: CategoryAll,
		Sort:     SortNewest,
	}
}

// Clear resets search, category and tech-stack selection to their defaults.
// The sort order is kept.
func (f *BrowseFilters) Clear() {
	f.Search = ""
	f.Category = CategoryAll
	f.TechStack = nil
}

// Apply returns the startups matching the filters, ordered by the selected
// sort. The input slice is not modified.
func (f BrowseFilters) Apply(startups []models.Startup) []models.Startup {
	filtered := make([]models.Startup, 0, len(startups))
	for _, s := range startups {
		if f.matches(s) {
			filtered = append(filtered, s)
		}
	}

	switch f.Sort {
	case SortMostViewed:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Views > filtered[j].Views
		})
	case SortHighestScore:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].RevivalScore > filtered[j].RevivalScore
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

func (f BrowseFilters) matches(s models.Startup) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && f.Category != CategoryAll && s.Category != f.Category {
		return false
	}
	if len(f.TechStack) > 0 && !intersects(s.TechStack, f.TechStack) {
		return false
	}
	return true
}

func intersects(stack []string, selected []string) bool {
	for _, tech := range selected {
		for _, have := range stack {
			if have == tech {
				return true
			}
		}
	}
	return false
}
