// Package lens narrows result lists to a risk category.
//
// Each presentation has its own at_risk/critical expressions. They differ on
// purpose and must not be unified.
package lens

import "github.com/hoopsledger/pickboard/internal/domain"

// Predicate reports whether an item belongs to a lens
type Predicate[T any] func(T) bool

// Filter returns the items matching pred, preserving order.
// A nil predicate keeps everything. Filtering an already-filtered list is a no-op.
func Filter[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Pick returns the pick-list predicate for l, nil for the all lens
func Pick(l domain.Lens) Predicate[domain.PickSummary] {
	switch l {
	case domain.LensAtRisk:
		return func(p domain.PickSummary) bool {
			return p.HasConditional || p.IsSwap || p.HasForfeited ||
				p.PickStatus == domain.PickStatusTraded || p.ProvenanceTradeCount > 0
		}
	case domain.LensCritical:
		return func(p domain.PickSummary) bool {
			return p.HasForfeited || p.ConditionalLineCount >= 1 || p.ProvenanceTradeCount >= 2
		}
	default:
		return nil
	}
}

// Cell returns the grid predicate for l, nil for the all lens
func Cell(l domain.Lens) Predicate[domain.GridCell] {
	switch l {
	case domain.LensAtRisk:
		return func(c domain.GridCell) bool {
			return c.HasOutgoing || c.HasConditional || c.HasSwap || c.ProvenanceTradeCount > 0
		}
	case domain.LensCritical:
		return func(c domain.GridCell) bool {
			return c.HasForfeited || c.HasConditional || c.ProvenanceTradeCount >= 2
		}
	default:
		return nil
	}
}

// Selection returns the selection-list predicate for l, nil for the all lens
func Selection(l domain.Lens) Predicate[domain.SelectionRow] {
	switch l {
	case domain.LensAtRisk:
		return func(s domain.SelectionRow) bool {
			return s.ProvenanceTradeCount > 0 || s.HasTrade()
		}
	case domain.LensCritical:
		return func(s domain.SelectionRow) bool {
			return s.ProvenanceTradeCount >= 2
		}
	default:
		return nil
	}
}
