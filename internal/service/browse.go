package service

import (
	"context"
	"sort"
	"strings"

	"github.com/templui/mediavault/internal/model"
	"github.com/templui/mediavault/internal/repository"
)

const (
	CategoryTrending = "trending"
	CategoryNew      = "new"

	SortPopular = "popular"
	SortNewest  = "newest"
	SortOldest  = "oldest"
)

// ContentQuery holds the browse filters. Empty fields are not applied.
type ContentQuery struct {
	Category    string
	Type        string
	ContentType string // access level, "free" or "premium"; anything else is ignored
	SearchTerm  string
	SortBy      string
}

type BrowseService struct {
	contentRepository  repository.ContentRepository
	includeUnpublished bool
}

// NewBrowseService creates the listing resolver. includeUnpublished controls
// the base set when no category is given: all items, or published ones only.
func NewBrowseService(contentRepository repository.ContentRepository, includeUnpublished bool) *BrowseService {
	return &BrowseService{
		contentRepository:  contentRepository,
		includeUnpublished: includeUnpublished,
	}
}

func (s *BrowseService) Browse(ctx context.Context, q ContentQuery) ([]*model.Content, error) {
	items, err := s.baseSet(ctx, q.Category)
	if err != nil {
		return nil, err
	}

	if q.Type != "" {
		items = filter(items, func(c *model.Content) bool { return c.Type == q.Type })
	}

	// Other values, such as "all", leave the access level unfiltered.
	switch q.ContentType {
	case model.AccessLevelFree:
		items = filter(items, func(c *model.Content) bool { return !c.IsPremium() })
	case model.AccessLevelPremium:
		items = filter(items, (*model.Content).IsPremium)
	}

	if term := strings.ToLower(q.SearchTerm); term != "" {
		items = filter(items, func(c *model.Content) bool {
			return strings.Contains(strings.ToLower(c.Title), term) ||
				strings.Contains(strings.ToLower(c.Description), term)
		})
	}

	sortContent(items, q.SortBy)
	return items, nil
}

func (s *BrowseService) baseSet(ctx context.Context, category string) ([]*model.Content, error) {
	switch category {
	case CategoryTrending:
		return s.contentRepository.MostViewed(ctx, TrendingLimit)
	case CategoryNew:
		return s.contentRepository.Newest(ctx, NewLimit)
	case "":
		if s.includeUnpublished {
			return s.contentRepository.All(ctx)
		}
		return s.contentRepository.Published(ctx)
	default:
		return s.contentRepository.ByCategory(ctx, category)
	}
}

func filter(items []*model.Content, keep func(c *model.Content) bool) []*model.Content {
	out := items[:0]
	for _, c := range items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// sortContent orders items in place. Ties keep the base set order.
func sortContent(items []*model.Content, sortBy string) {
	switch sortBy {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Views > items[j].Views })
	}
}
