// Package risk holds the single ownership-risk formula shared by every presentation.
package risk

import "github.com/hoopsledger/pickboard/internal/domain"

const (
	WeightForfeited   = 7
	WeightConditional = 4
	WeightSwap        = 2
	WeightTraded      = 2

	// ProvenanceCap bounds the provenance term so one heavily re-traded pick cannot dominate
	ProvenanceCap = 6
)

// Input carries the aggregated flags a pick is scored on
type Input struct {
	Forfeited            bool
	Conditional          bool
	Swap                 bool
	Status               domain.PickStatus
	ProvenanceTradeCount int
}

// Score computes the ownership risk score:
//
//	7·forfeited + 4·conditional + 2·swap + 2·(status == Traded) + min(provenance, 6)
func Score(in Input) int {
	score := 0
	if in.Forfeited {
		score += WeightForfeited
	}
	if in.Conditional {
		score += WeightConditional
	}
	if in.Swap {
		score += WeightSwap
	}
	if in.Status == domain.PickStatusTraded {
		score += WeightTraded
	}
	return score + min(max(in.ProvenanceTradeCount, 0), ProvenanceCap)
}

// Status resolves the pick status by strict precedence:
// Forfeited > Conditional > Traded > Own.
func Status(forfeited, conditional, tradedOut bool) domain.PickStatus {
	switch {
	case forfeited:
		return domain.PickStatusForfeited
	case conditional:
		return domain.PickStatusConditional
	case tradedOut:
		return domain.PickStatusTraded
	default:
		return domain.PickStatusOwn
	}
}

// SelectionScore computes the provenance risk of a historical selection:
// provenance count, plus one when a trade is linked, plus one for first-round picks.
func SelectionScore(provenanceTradeCount int, hasTrade bool, draftRound int) int {
	score := max(provenanceTradeCount, 0)
	if hasTrade {
		score++
	}
	if draftRound == 1 {
		score++
	}
	return score
}
