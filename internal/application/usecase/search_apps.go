package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	"github.com/sahilm/fuzzy"
)

// SearchAppsUseCase finds applications by name across all categories.
type SearchAppsUseCase struct {
	catalog port.AppCatalog
}

// NewSearchAppsUseCase creates a new app search use case.
func NewSearchAppsUseCase(catalog port.AppCatalog) *SearchAppsUseCase {
	return &SearchAppsUseCase{catalog: catalog}
}

// appSource adapts entries to fuzzy.Source.
type appSource []entity.AppEntry

func (s appSource) String(i int) string { return s[i].Name }
func (s appSource) Len() int            { return len(s) }

// Search returns apps whose name fuzzy-matches query, best first.
// An empty query returns every app sorted by name. limit <= 0 means no limit.
func (uc *SearchAppsUseCase) Search(ctx context.Context, query string, limit int) ([]entity.AppEntry, error) {
	catalog, err := uc.catalog.ListApps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}

	entries := catalog.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Category < entries[j].Category
	})

	var results []entity.AppEntry
	if query == "" {
		results = entries
	} else {
		matches := fuzzy.FindFrom(query, appSource(entries))
		results = make([]entity.AppEntry, 0, len(matches))
		for _, m := range matches {
			results = append(results, entries[m.Index])
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	logging.FromContext(ctx).Debug().Str("query", query).Int("results", len(results)).Msg("app search")
	return results, nil
}
