package picks

import (
	"regexp"
	"strings"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// destinationPattern matches a leading "To <CODE>:" fragment in rendered asset text.
// The warehouse does not expose the destination as a structured field for every row,
// so it is recovered from display text here; swap this for the ingestion field once it exists.
var destinationPattern = regexp.MustCompile(`(?i)^\s*to\s+([a-z]{2,4})\s*:`)

// ParseDestination extracts the destination team code from display text.
// ok is false when the text does not start with a "To <CODE>:" fragment.
func ParseDestination(displayText string) (domain.TeamCode, bool) {
	m := destinationPattern.FindStringSubmatch(displayText)
	if m == nil {
		return "", false
	}
	return domain.TeamCode(strings.ToUpper(m[1])), true
}

// currentTeam resolves who holds the pick now. rows must be in slot order.
// The first traded-out row with a resolvable destination decides; when none
// resolves the pick stays with its original owner.
func currentTeam(team domain.TeamCode, rows []domain.AssetRow) domain.TeamCode {
	for _, row := range rows {
		if !row.AssetType.IsTradedOut() {
			continue
		}
		if dest, ok := destination(row); ok {
			return dest
		}
	}
	return team
}

func destination(row domain.AssetRow) (domain.TeamCode, bool) {
	if row.DisplayText != nil {
		if dest, ok := ParseDestination(*row.DisplayText); ok {
			return dest, true
		}
	}
	if row.CounterpartyTeamCode != nil && *row.CounterpartyTeamCode != "" {
		return row.CounterpartyTeamCode.Normalize(), true
	}
	return "", false
}
