// Package provenance indexes trade-linked ownership edges by the picks they touch.
//
// An edge is relevant to a (team, year, round) when the team is the sender, the
// receiver or the original owner. The rule is deliberately over-inclusive: the
// warehouse carries no chain-link field, so audit completeness wins over precision.
package provenance

import (
	"sort"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// Index groups provenance edges per pick key
type Index struct {
	edges map[domain.PickKey][]domain.ProvenanceEdge
}

// NewIndex builds an index over edges. Nil or empty input yields an empty index.
func NewIndex(edges []domain.ProvenanceEdge) *Index {
	idx := &Index{edges: make(map[domain.PickKey][]domain.ProvenanceEdge)}
	for _, edge := range edges {
		seen := make(map[domain.TeamCode]bool, 3)
		for _, team := range []domain.TeamCode{edge.FromTeamCode, edge.ToTeamCode, edge.OriginalTeamCode} {
			if team == "" || seen[team] {
				continue
			}
			seen[team] = true
			key := domain.NewPickKey(team, edge.DraftYear, edge.DraftRound)
			idx.edges[key] = append(idx.edges[key], edge)
		}
	}
	return idx
}

// Edges returns the edges relevant to key ordered by trade date, then edge id
func (i *Index) Edges(key domain.PickKey) []domain.ProvenanceEdge {
	if i == nil {
		return []domain.ProvenanceEdge{}
	}
	edges := append([]domain.ProvenanceEdge{}, i.edges[key]...)
	sortEdges(edges)
	return edges
}

// TradeCount returns the number of distinct trades among the edges relevant to key
func (i *Index) TradeCount(key domain.PickKey) int {
	if i == nil {
		return 0
	}
	trades := make(map[int64]struct{})
	for _, edge := range i.edges[key] {
		trades[edge.TradeID] = struct{}{}
	}
	return len(trades)
}

// SelectionTradeCount counts distinct trades relevant to a historical selection,
// matching either the drafting team or the pick's original owner.
func (i *Index) SelectionTradeCount(sel domain.DraftSelection) int {
	if i == nil {
		return 0
	}
	trades := make(map[int64]struct{})
	for _, edge := range i.selectionEdges(sel) {
		trades[edge.TradeID] = struct{}{}
	}
	return len(trades)
}

// SelectionEdges returns the edges relevant to a historical selection, each once,
// ordered by trade date, then edge id
func (i *Index) SelectionEdges(sel domain.DraftSelection) []domain.ProvenanceEdge {
	if i == nil {
		return []domain.ProvenanceEdge{}
	}
	edges := i.selectionEdges(sel)
	sortEdges(edges)
	return edges
}

func (i *Index) selectionEdges(sel domain.DraftSelection) []domain.ProvenanceEdge {
	teams := []domain.TeamCode{sel.TeamCode}
	if sel.OriginalTeamCode != nil && *sel.OriginalTeamCode != sel.TeamCode {
		teams = append(teams, *sel.OriginalTeamCode)
	}
	seen := make(map[int64]struct{})
	edges := []domain.ProvenanceEdge{}
	for _, team := range teams {
		for _, edge := range i.edges[domain.NewPickKey(team, sel.DraftYear, sel.DraftRound)] {
			if _, ok := seen[edge.ID]; ok {
				continue
			}
			seen[edge.ID] = struct{}{}
			edges = append(edges, edge)
		}
	}
	return edges
}

// sortEdges orders edges by trade date (undated last), then edge id
func sortEdges(edges []domain.ProvenanceEdge) {
	sort.SliceStable(edges, func(a, b int) bool {
		ta, tb := edges[a].TradeDate, edges[b].TradeDate
		switch {
		case ta != nil && tb != nil && !ta.Equal(*tb):
			return ta.Before(*tb)
		case ta == nil && tb != nil:
			return false
		case ta != nil && tb == nil:
			return true
		}
		return edges[a].ID < edges[b].ID
	})
}
