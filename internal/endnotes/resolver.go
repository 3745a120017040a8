// Package endnotes resolves endnote references, following depends_on chains.
package endnotes

import (
	"context"
	"fmt"
	"sort"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// DefaultMaxDepth bounds how many depends_on hops are followed
const DefaultMaxDepth = 3

// Fetcher loads endnotes by id. Unknown ids are simply absent from the result.
type Fetcher interface {
	GetEndnotesByIDs(ctx context.Context, ids []int64) ([]domain.Endnote, error)
}

// Result holds the resolved endnotes of a set of references
type Result struct {
	// Endnotes directly referenced by asset rows, ordered by id
	Endnotes []domain.Endnote
	// Dependencies reached through depends_on, in breadth-first order
	Dependencies []domain.Endnote
	// Missing lists referenced ids absent from the store
	Missing []int64
	// MissingDependencies lists depends_on ids absent from the store
	MissingDependencies []int64
}

// Resolve loads the referenced endnotes and follows depends_on breadth-first
// for up to maxDepth hops. Each id is fetched at most once, so cycles end.
func Resolve(ctx context.Context, fetcher Fetcher, refs []int64, maxDepth int) (Result, error) {
	result := Result{
		Endnotes:            []domain.Endnote{},
		Dependencies:        []domain.Endnote{},
		Missing:             []int64{},
		MissingDependencies: []int64{},
	}

	frontier := Unique(refs)
	if len(frontier) == 0 {
		return result, nil
	}

	seen := make(map[int64]bool, len(frontier))
	for _, id := range frontier {
		seen[id] = true
	}

	for depth := 0; len(frontier) > 0 && depth <= maxDepth; depth++ {
		found, err := fetcher.GetEndnotesByIDs(ctx, frontier)
		if err != nil {
			return Result{}, fmt.Errorf("failed to get endnotes: %w", err)
		}

		byID := make(map[int64]domain.Endnote, len(found))
		for _, n := range found {
			byID[n.EndnoteID] = n
		}

		var next []int64
		for _, id := range frontier {
			note, ok := byID[id]
			if !ok {
				if depth == 0 {
					result.Missing = append(result.Missing, id)
				} else {
					result.MissingDependencies = append(result.MissingDependencies, id)
				}
				continue
			}
			if depth == 0 {
				result.Endnotes = append(result.Endnotes, note)
			} else {
				result.Dependencies = append(result.Dependencies, note)
			}
			for _, dep := range note.DependsOnEndnotes {
				if !seen[dep] {
					seen[dep] = true
					next = append(next, dep)
				}
			}
		}
		frontier = next
	}

	return result, nil
}

// Unique returns the distinct ids in ascending order
func Unique(ids []int64) []int64 {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MissingRefs returns the referenced ids that are absent from found, sorted
func MissingRefs(refs []int64, found []domain.Endnote) []int64 {
	present := make(map[int64]bool, len(found))
	for _, n := range found {
		present[n.EndnoteID] = true
	}
	missing := []int64{}
	for _, id := range Unique(refs) {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
