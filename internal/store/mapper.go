package store

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/store/schema"
)

func toTeamCodes(codes []string) []domain.TeamCode {
	teams := make([]domain.TeamCode, 0, len(codes))
	for _, code := range codes {
		teams = append(teams, domain.TeamCode(code).Normalize())
	}
	return teams
}

func toTeamCodePtr(code *string) *domain.TeamCode {
	if code == nil {
		return nil
	}
	team := domain.TeamCode(*code).Normalize()
	if team == "" {
		return nil
	}
	return &team
}

func toDomainAssetRows(rows []schema.AssetRow) []domain.AssetRow {
	out := make([]domain.AssetRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.AssetRow{
			TeamCode:              domain.TeamCode(r.TeamCode).Normalize(),
			DraftYear:             r.DraftYear,
			DraftRound:            r.DraftRound,
			AssetSlot:             r.AssetSlot,
			SubAssetSlot:          r.SubAssetSlot,
			AssetType:             domain.AssetType(r.AssetType),
			IsForfeited:           r.IsForfeited,
			IsSwap:                r.IsSwap,
			IsConditional:         r.IsConditional,
			CounterpartyTeamCode:  toTeamCodePtr(r.CounterpartyTeamCode),
			CounterpartyTeamCodes: toTeamCodes(r.CounterpartyTeamCodes),
			ViaTeamCodes:          toTeamCodes(r.ViaTeamCodes),
			DisplayText:           r.DisplayText,
			PrimaryEndnoteID:      r.PrimaryEndnoteID,
			EffectiveEndnoteIDs:   append([]int64{}, r.EffectiveEndnoteIDs...),
			NeedsReview:           r.NeedsReview,
			RefreshedAt:           r.RefreshedAt,
		})
	}
	return out
}

func toDomainProvenanceEdges(edges []schema.ProvenanceEdge) []domain.ProvenanceEdge {
	out := make([]domain.ProvenanceEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, domain.ProvenanceEdge{
			ID:                 e.ID,
			TradeID:            e.TradeID,
			TradeDate:          e.TradeDate,
			DraftYear:          e.DraftYear,
			DraftRound:         e.DraftRound,
			FromTeamCode:       domain.TeamCode(e.FromTeamCode).Normalize(),
			ToTeamCode:         domain.TeamCode(e.ToTeamCode).Normalize(),
			OriginalTeamCode:   domain.TeamCode(e.OriginalTeamCode).Normalize(),
			IsSwap:             e.IsSwap,
			IsFuture:           e.IsFuture,
			IsConditional:      e.IsConditional,
			ConditionalType:    e.ConditionalType,
			IsDraftYearPlusTwo: e.IsDraftYearPlusTwo,
			Raw:                rawJSON(e.Raw),
		})
	}
	return out
}

// rawJSON treats SQL NULL and JSON null alike
func rawJSON(raw datatypes.JSON) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.RawMessage(raw)
}

func toDomainEndnotes(notes []schema.Endnote) []domain.Endnote {
	out := make([]domain.Endnote, 0, len(notes))
	for _, n := range notes {
		out = append(out, domain.Endnote{
			EndnoteID:         n.EndnoteID,
			TradeID:           n.TradeID,
			TradeDate:         n.TradeDate,
			Explanation:       n.Explanation,
			Protections:       n.Protections,
			Contingency:       n.Contingency,
			Exercise:          n.Exercise,
			IsSwap:            n.IsSwap,
			IsConditional:     n.IsConditional,
			DraftYearStart:    n.DraftYearStart,
			DraftYearEnd:      n.DraftYearEnd,
			DraftRounds:       append([]int64{}, n.DraftRounds...),
			DependsOnEndnotes: append([]int64{}, n.DependsOnEndnotes...),
		})
	}
	return out
}

func toDomainDraftSelections(selections []schema.DraftSelection) []domain.DraftSelection {
	out := make([]domain.DraftSelection, 0, len(selections))
	for _, s := range selections {
		out = append(out, domain.DraftSelection{
			TransactionID:    s.TransactionID,
			DraftYear:        s.DraftYear,
			DraftRound:       s.DraftRound,
			PickNumber:       s.PickNumber,
			PlayerID:         s.PlayerID,
			PlayerName:       s.PlayerName,
			TeamCode:         domain.TeamCode(s.TeamCode).Normalize(),
			OriginalTeamCode: toTeamCodePtr(s.OriginalTeamCode),
			TradeID:          s.TradeID,
			SelectedAt:       s.SelectedAt,
		})
	}
	return out
}
