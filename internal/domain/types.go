package domain

import (
	"strconv"
	"strings"
	"time"
)

// TeamCode is a league team abbreviation, e.g. "NYK"
type TeamCode string

// Normalize upper-cases and trims a team code
func (t TeamCode) Normalize() TeamCode {
	return TeamCode(strings.ToUpper(strings.TrimSpace(string(t))))
}

// AssetType classifies one fragment of a pick's disposition
type AssetType string

const (
	// AssetTypeOwn means the original owner still holds the fragment
	AssetTypeOwn AssetType = "OWN"
	// AssetTypeTradedOut means the fragment was conveyed to another team
	AssetTypeTradedOut AssetType = "TO"
	// AssetTypeAcquired means the fragment was received from another team
	AssetTypeAcquired AssetType = "HAS"
	// AssetTypeOther covers fragments the warehouse could not classify
	AssetTypeOther AssetType = "OTHER"
)

// IsTradedOut reports whether the asset type denotes an outgoing fragment
func (a AssetType) IsTradedOut() bool {
	return strings.EqualFold(string(a), string(AssetTypeTradedOut))
}

// IsOwn reports whether the asset type denotes a retained fragment
func (a AssetType) IsOwn() bool {
	return strings.EqualFold(string(a), string(AssetTypeOwn))
}

// PickStatus is the headline disposition of a pick
type PickStatus string

const (
	PickStatusForfeited   PickStatus = "Forfeited"
	PickStatusConditional PickStatus = "Conditional"
	PickStatusTraded      PickStatus = "Traded"
	PickStatusOwn         PickStatus = "Own"
)

// SeverityLane buckets a historical selection by provenance contention
type SeverityLane string

const (
	SeverityDeepChain SeverityLane = "deep_chain"
	SeverityWithTrade SeverityLane = "with_trade"
	SeverityClean     SeverityLane = "clean"
)

// SeverityLanes lists lanes most-severe-first
var SeverityLanes = []SeverityLane{SeverityDeepChain, SeverityWithTrade, SeverityClean}

// View is the dashboard presentation being requested
type View string

const (
	ViewPicks      View = "picks"
	ViewGrid       View = "grid"
	ViewSelections View = "selections"
)

// Valid checks if a view is known
func (v View) Valid() bool {
	return v == ViewPicks || v == ViewGrid || v == ViewSelections
}

// Sort is the ordering requested for a presentation
type Sort string

const (
	SortBoard      Sort = "board"
	SortRisk       Sort = "risk"
	SortProvenance Sort = "provenance"
)

// Valid checks if a sort is known
func (s Sort) Valid() bool {
	return s == SortBoard || s == SortRisk || s == SortProvenance
}

// Lens is a named risk predicate
type Lens string

const (
	LensAll      Lens = "all"
	LensAtRisk   Lens = "at_risk"
	LensCritical Lens = "critical"
)

// Valid checks if a lens is known
func (l Lens) Valid() bool {
	return l == LensAll || l == LensAtRisk || l == LensCritical
}

// SelectedType names the kind of entity an overlay selector refers to
type SelectedType string

const (
	SelectedTypePick      SelectedType = "pick"
	SelectedTypeSelection SelectedType = "selection"
)

const (
	// MaxDraftRound is the number of rounds in the league draft
	MaxDraftRound = 2
	// GridWindowYears is the number of draft years shown in the ownership grid
	GridWindowYears = 7
	// RoundAll is the sentinel for "every round"
	RoundAll = 0
)

// Rounds returns the draft rounds selected by round (RoundAll means every round)
func Rounds(round int) []int {
	if round != RoundAll {
		return []int{round}
	}
	rounds := make([]int, 0, MaxDraftRound)
	for r := 1; r <= MaxDraftRound; r++ {
		rounds = append(rounds, r)
	}
	return rounds
}

// CurrentDraftYear returns the next draft to be held as of now.
// The draft is held in June, so from July on the next draft is next year's.
func CurrentDraftYear(now time.Time) int {
	if now.Month() >= time.July {
		return now.Year() + 1
	}
	return now.Year()
}

// RawSelection holds dashboard selection parameters exactly as received
type RawSelection struct {
	View         string `form:"view"`
	Year         string `form:"year"`
	Round        string `form:"round"`
	Team         string `form:"team"`
	Sort         string `form:"sort"`
	Lens         string `form:"lens"`
	SelectedType string `form:"selected_type"`
	SelectedKey  string `form:"selected_key"`
}

// Selection holds normalized dashboard selection parameters
type Selection struct {
	View         View
	Year         int
	Round        int // RoundAll for every round
	Team         TeamCode
	Sort         Sort
	Lens         Lens
	SelectedType SelectedType
	SelectedKey  string
}

// HasTeam reports whether the selection narrows to a single team
func (s Selection) HasTeam() bool {
	return s.Team != ""
}

// NormalizeSelection maps raw parameters onto a Selection.
// Unrecognized values fall back to their defaults; it never fails.
// knownTeam may be nil, in which case any well-formed team code is accepted.
func NormalizeSelection(raw RawSelection, defaultYear int, knownTeam func(TeamCode) bool) Selection {
	sel := Selection{
		View:  View(strings.ToLower(strings.TrimSpace(raw.View))),
		Year:  defaultYear,
		Round: RoundAll,
		Sort:  Sort(strings.ToLower(strings.TrimSpace(raw.Sort))),
		Lens:  Lens(strings.ToLower(strings.TrimSpace(raw.Lens))),
	}
	if !sel.View.Valid() {
		sel.View = ViewPicks
	}
	if !sel.Sort.Valid() {
		sel.Sort = SortBoard
	}
	if !sel.Lens.Valid() {
		sel.Lens = LensAll
	}

	if year, err := strconv.Atoi(strings.TrimSpace(raw.Year)); err == nil && year >= 1947 && year <= 2100 {
		sel.Year = year
	}

	if round, err := strconv.Atoi(strings.TrimSpace(raw.Round)); err == nil && round >= 1 && round <= MaxDraftRound {
		sel.Round = round
	}

	team := TeamCode(raw.Team).Normalize()
	if IsTeamCode(string(team)) && (knownTeam == nil || knownTeam(team)) {
		sel.Team = team
	}

	switch SelectedType(strings.ToLower(strings.TrimSpace(raw.SelectedType))) {
	case SelectedTypePick:
		sel.SelectedType = SelectedTypePick
		sel.SelectedKey = strings.TrimSpace(raw.SelectedKey)
	case SelectedTypeSelection:
		sel.SelectedType = SelectedTypeSelection
		sel.SelectedKey = strings.TrimSpace(raw.SelectedKey)
	}

	return sel
}
