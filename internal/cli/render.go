package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hoopsledger/pickboard/internal/api/shared/dto"
	"github.com/hoopsledger/pickboard/internal/domain"
)

const emptyCell = "·"

// freshnessLine describes how long ago the warehouse was refreshed
func freshnessLine(refreshedAt *time.Time, now time.Time) string {
	if refreshedAt == nil {
		return StyleMuted.Render("Warehouse refresh time unknown")
	}
	return StyleMuted.Render(fmt.Sprintf("Warehouse refreshed %s (%s)",
		humanize.RelTime(*refreshedAt, now, "ago", "from now"),
		refreshedAt.UTC().Format("2006-01-02 15:04 MST")))
}

func selectionLine(sel dto.SelectionParams) string {
	team := "all teams"
	if sel.Team != nil {
		team = string(*sel.Team)
	}
	round := "all rounds"
	if sel.Round != dto.RoundAllValue {
		round = "round " + sel.Round
	}
	return fmt.Sprintf("%d · %s · %s · sort=%s · lens=%s", sel.Year, round, team, sel.Sort, sel.Lens)
}

func flags(swap, conditional, forfeited, review bool) string {
	var b strings.Builder
	if swap {
		b.WriteString("S")
	}
	if conditional {
		b.WriteString("C")
	}
	if forfeited {
		b.WriteString("F")
	}
	if review {
		b.WriteString("!")
	}
	if b.Len() == 0 {
		return emptyCell
	}
	return b.String()
}

func orEmpty(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

func joinTeams(teams []domain.TeamCode) string {
	parts := make([]string, 0, len(teams))
	for _, t := range teams {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ",")
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

// RenderPicks writes the pick list as a table
func RenderPicks(w io.Writer, resp *dto.PickListResponse, now time.Time) error {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Picks") + "  " + selectionLine(resp.Selection) + "\n\n")

	if len(resp.Picks) == 0 {
		b.WriteString(StyleMuted.Render("No picks match the selection") + "\n")
	} else {
		table := NewTable(
			TableColumn{Header: "PICK"},
			TableColumn{Header: "OWNER"},
			TableColumn{Header: "STATUS"},
			TableColumn{Header: "FLAGS"},
			TableColumn{Header: "PROTECTIONS"},
			TableColumn{Header: "LINES", Align: AlignRight},
			TableColumn{Header: "TRADES", Align: AlignRight},
			TableColumn{Header: "RISK", Align: AlignRight},
		)
		for _, p := range resp.Picks {
			table.AddRow(
				p.PickKey,
				string(p.CurrentTeamCode),
				string(p.PickStatus),
				flags(p.IsSwap, p.HasConditional, p.HasForfeited, p.NeedsReview),
				orEmpty(p.ProtectionsSummary),
				strconv.Itoa(p.AssetLineCount),
				strconv.Itoa(p.ProvenanceTradeCount),
				riskStyle(p.OwnershipRiskScore).Render(strconv.Itoa(p.OwnershipRiskScore)),
			)
		}
		b.WriteString(table.Render())
	}

	b.WriteString("\n" + renderKeyValue("Total", humanize.Comma(int64(resp.Total))) + "\n")
	if len(resp.CoverageGaps) > 0 {
		b.WriteString(StyleWarning.Render("Coverage gaps: ") + strings.Join(resp.CoverageGaps, ", ") + "\n")
	}
	if len(resp.MissingEndnoteRefs) > 0 {
		b.WriteString(StyleWarning.Render("Missing endnotes: ") + joinIDs(resp.MissingEndnoteRefs) + "\n")
	}
	b.WriteString(freshnessLine(resp.RefreshedAt, now) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderGrid writes the ownership grid, one line per team and round
func RenderGrid(w io.Writer, resp *dto.GridResponse, now time.Time) error {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ownership grid") + "  " + selectionLine(resp.Selection) + "\n\n")

	if len(resp.Teams) == 0 {
		b.WriteString(StyleMuted.Render("No cells match the selection") + "\n")
	} else {
		columns := []TableColumn{{Header: "TEAM"}, {Header: "RD", Align: AlignRight}}
		for _, year := range resp.Years {
			columns = append(columns, TableColumn{Header: strconv.Itoa(year)})
		}
		columns = append(columns,
			TableColumn{Header: "OUT", Align: AlignRight},
			TableColumn{Header: "TRADES", Align: AlignRight},
			TableColumn{Header: "RISK", Align: AlignRight},
		)
		table := NewTable(columns...)

		for _, team := range resp.Teams {
			for i, round := range team.Rounds {
				row := make([]string, 0, len(columns))
				if i == 0 {
					row = append(row, string(team.TeamCode))
				} else {
					row = append(row, "")
				}
				row = append(row, strconv.Itoa(round.DraftRound))
				for _, cell := range round.Cells {
					if cell == nil {
						row = append(row, StyleMuted.Render(emptyCell))
						continue
					}
					row = append(row, riskStyle(cell.OwnershipRiskScore).Render(cell.CellText))
				}
				if i == 0 {
					row = append(row,
						strconv.Itoa(team.OutgoingCount),
						strconv.Itoa(team.ProvenanceTotal),
						riskStyle(team.RiskTotal).Render(strconv.Itoa(team.RiskTotal)),
					)
				}
				table.AddRow(row...)
			}
		}
		b.WriteString(table.Render())
	}

	b.WriteString("\n" + freshnessLine(resp.RefreshedAt, now) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderSelections writes historical selections grouped by severity lane
func RenderSelections(w io.Writer, resp *dto.SelectionListResponse) error {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Selections") + "  " + selectionLine(resp.Selection) + "\n")

	counts := make([]string, 0, len(domain.SeverityLanes))
	for _, lane := range domain.SeverityLanes {
		counts = append(counts, severityStyle(lane).Render(fmt.Sprintf("%s=%d", lane, resp.SeverityCounts[lane])))
	}
	b.WriteString(strings.Join(counts, "  ") + "\n")

	if len(resp.Lanes) == 0 {
		b.WriteString("\n" + StyleMuted.Render("No selections match the selection") + "\n")
	}

	for _, lane := range resp.Lanes {
		b.WriteString("\n" + severityStyle(lane.Severity).Render(string(lane.Severity)) + "\n")

		table := NewTable(
			TableColumn{Header: "ID", Align: AlignRight},
			TableColumn{Header: "RD", Align: AlignRight},
			TableColumn{Header: "PICK", Align: AlignRight},
			TableColumn{Header: "PLAYER"},
			TableColumn{Header: "TEAM"},
			TableColumn{Header: "TRADES", Align: AlignRight},
			TableColumn{Header: "RISK", Align: AlignRight},
		)
		for _, r := range lane.Rows {
			table.AddRow(
				strconv.FormatInt(r.TransactionID, 10),
				strconv.Itoa(r.DraftRound),
				humanize.Ordinal(r.PickNumber),
				r.PlayerName,
				string(r.TeamCode),
				strconv.Itoa(r.ProvenanceTradeCount),
				strconv.Itoa(r.ProvenanceRiskScore),
			)
		}
		b.WriteString(table.Render())
	}

	b.WriteString("\n" + renderKeyValue("Total", humanize.Comma(int64(resp.Total))) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderPickDetail writes the overlay payload of a single pick
func RenderPickDetail(w io.Writer, resp *dto.PickDetailResponse, now time.Time) error {
	var b strings.Builder
	p := resp.Pick

	b.WriteString(StyleTitle.Render(p.PickKey) + "\n")
	b.WriteString(renderKeyValue("Owner", string(p.CurrentTeamCode)) + "\n")
	b.WriteString(renderKeyValue("Status", string(p.PickStatus)) + "\n")
	b.WriteString(renderKeyValue("Flags", flags(p.IsSwap, p.HasConditional, p.HasForfeited, p.NeedsReview)) + "\n")
	b.WriteString(renderKeyValue("Protections", orEmpty(p.ProtectionsSummary)) + "\n")
	b.WriteString(renderKeyValue("Trades", strconv.Itoa(p.ProvenanceTradeCount)) + "\n")
	b.WriteString(renderKeyValue("Risk", riskStyle(p.OwnershipRiskScore).Render(strconv.Itoa(p.OwnershipRiskScore))) + "\n")

	b.WriteString("\n" + StyleInfo.Render("Asset lines") + "\n")
	lines := NewTable(
		TableColumn{Header: "SLOT"},
		TableColumn{Header: "TYPE"},
		TableColumn{Header: "COUNTERPARTY"},
		TableColumn{Header: "VIA"},
		TableColumn{Header: "TEXT"},
		TableColumn{Header: "ENDNOTES"},
	)
	for _, l := range resp.AssetLines {
		counterparty := joinTeams(l.CounterpartyTeamCodes)
		if counterparty == "" && l.CounterpartyTeamCode != nil {
			counterparty = string(*l.CounterpartyTeamCode)
		}
		text := ""
		if l.DisplayText != nil {
			text = *l.DisplayText
		}
		lines.AddRow(
			fmt.Sprintf("%d.%d", l.AssetSlot, l.SubAssetSlot),
			string(l.AssetType),
			orEmpty(counterparty),
			orEmpty(joinTeams(l.ViaTeamCodes)),
			orEmpty(text),
			orEmpty(joinIDs(l.EffectiveEndnoteIDs)),
		)
	}
	b.WriteString(lines.Render())

	b.WriteString("\n" + StyleInfo.Render("Provenance") + "\n")
	if len(resp.Provenance) == 0 {
		b.WriteString(StyleMuted.Render("No trades recorded") + "\n")
	} else {
		edges := NewTable(
			TableColumn{Header: "TRADE", Align: AlignRight},
			TableColumn{Header: "DATE"},
			TableColumn{Header: "FROM"},
			TableColumn{Header: "TO"},
			TableColumn{Header: "FLAGS"},
		)
		for _, e := range resp.Provenance {
			date := emptyCell
			if e.TradeDate != nil {
				date = e.TradeDate.Format("2006-01-02")
			}
			edges.AddRow(
				strconv.FormatInt(e.TradeID, 10),
				date,
				string(e.FromTeamCode),
				string(e.ToTeamCode),
				flags(e.IsSwap, e.IsConditional, false, false),
			)
		}
		b.WriteString(edges.Render())
	}

	if len(resp.Endnotes)+len(resp.EndnoteDependencies) > 0 {
		b.WriteString("\n" + StyleInfo.Render("Endnotes") + "\n")
		for _, n := range resp.Endnotes {
			b.WriteString(renderEndnote(n, false))
		}
		for _, n := range resp.EndnoteDependencies {
			b.WriteString(renderEndnote(n, true))
		}
	}
	if missing := append(append([]int64{}, resp.MissingEndnoteRefs...), resp.MissingDependencyRefs...); len(missing) > 0 {
		b.WriteString(StyleWarning.Render("Missing endnotes: ") + joinIDs(missing) + "\n")
	}

	b.WriteString("\n" + freshnessLine(p.RefreshedAt, now) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderEndnote(n dto.EndnoteResponse, dependency bool) string {
	label := fmt.Sprintf("#%d", n.EndnoteID)
	if dependency {
		label += " (via dependency)"
	}
	text := emptyCell
	if n.Explanation != nil {
		text = *n.Explanation
	}
	line := "  " + StyleKey.Render(label) + " " + text + "\n"
	if n.Protections != nil && *n.Protections != "" {
		line += "    " + StyleMuted.Render("protections: "+*n.Protections) + "\n"
	}
	return line
}
