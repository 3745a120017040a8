package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	teamCodePattern = regexp.MustCompile(`^[A-Z]{2,4}$`)
	pickKeyPattern  = regexp.MustCompile(`^([A-Z]{2,4})-([0-9]{4})-([0-9]{1,2})$`)
	selectionIDExpr = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// IsTeamCode checks if s is a well-formed (already upper-cased) team code
func IsTeamCode(s string) bool {
	return teamCodePattern.MatchString(s)
}

// PickKey identifies a pick by original owner, year and round.
// Its string form is TEAM-YEAR-ROUND, e.g. "NYK-2028-1".
type PickKey struct {
	TeamCode   TeamCode
	DraftYear  int
	DraftRound int
}

// NewPickKey creates a pick key
func NewPickKey(team TeamCode, year, round int) PickKey {
	return PickKey{TeamCode: team, DraftYear: year, DraftRound: round}
}

// String formats the key as TEAM-YEAR-ROUND
func (k PickKey) String() string {
	return fmt.Sprintf("%s-%d-%d", k.TeamCode, k.DraftYear, k.DraftRound)
}

// ParsePickKey parses a TEAM-YEAR-ROUND key. ok is false for anything malformed.
func ParsePickKey(s string) (PickKey, bool) {
	m := pickKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return PickKey{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return PickKey{}, false
	}
	round, err := strconv.Atoi(m[3])
	if err != nil || round < 1 || round > MaxDraftRound {
		return PickKey{}, false
	}
	return PickKey{TeamCode: TeamCode(m[1]), DraftYear: year, DraftRound: round}, true
}

// ParseSelectionID parses a selection (transaction) id. ok is false for anything malformed.
func ParseSelectionID(s string) (int64, bool) {
	if !selectionIDExpr.MatchString(s) {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
