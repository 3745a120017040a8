// Package overlay decides whether a previously focused pick or selection is
// still present in the current result set.
package overlay

import (
	"strconv"
	"strings"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// State of the overlay after a filter, sort or lens change
type State string

const (
	StateCleared State = "cleared"
	StateVisible State = "visible"
)

// Selector references the focused entity
type Selector struct {
	Type domain.SelectedType
	Key  string
}

// IsZero reports whether nothing is selected
func (s Selector) IsZero() bool {
	return s.Type == "" && s.Key == ""
}

// Decision is the outcome of a visibility check.
// Selector is echoed only when the state is visible.
type Decision struct {
	State    State
	Selector *Selector
}

// Visible reports whether the overlay should render a payload
func (d Decision) Visible() bool {
	return d.State == StateVisible
}

// Cleared is the decision for a missing, malformed or filtered-out selector
func Cleared() Decision {
	return Decision{State: StateCleared}
}

func visible(sel Selector) Decision {
	return Decision{State: StateVisible, Selector: &sel}
}

// FromSelection extracts the selector carried by normalized dashboard parameters
func FromSelection(s domain.Selection) Selector {
	return Selector{Type: s.SelectedType, Key: s.SelectedKey}
}

// ResolvePick looks the selector up among pick summaries.
// Keys are matched after upper-casing, so "nyk-2028-1" resolves like "NYK-2028-1".
func ResolvePick(sel Selector, summaries []domain.PickSummary) Decision {
	key, ok := pickKey(sel)
	if !ok {
		return Cleared()
	}
	for _, s := range summaries {
		if s.Key() == key {
			return visible(Selector{Type: domain.SelectedTypePick, Key: key.String()})
		}
	}
	return Cleared()
}

// ResolveCell looks the selector up among grid cells
func ResolveCell(sel Selector, cells []domain.GridCell) Decision {
	key, ok := pickKey(sel)
	if !ok {
		return Cleared()
	}
	for _, c := range cells {
		if c.Key() == key {
			return visible(Selector{Type: domain.SelectedTypePick, Key: key.String()})
		}
	}
	return Cleared()
}

// ResolveSelection looks the selector up among classified selection rows
func ResolveSelection(sel Selector, rows []domain.SelectionRow) Decision {
	if sel.Type != domain.SelectedTypeSelection {
		return Cleared()
	}
	id, ok := domain.ParseSelectionID(strings.TrimSpace(sel.Key))
	if !ok {
		return Cleared()
	}
	for _, r := range rows {
		if r.TransactionID == id {
			return visible(Selector{Type: domain.SelectedTypeSelection, Key: strconv.FormatInt(id, 10)})
		}
	}
	return Cleared()
}

func pickKey(sel Selector) (domain.PickKey, bool) {
	if sel.Type != domain.SelectedTypePick {
		return domain.PickKey{}, false
	}
	return domain.ParsePickKey(strings.ToUpper(strings.TrimSpace(sel.Key)))
}
