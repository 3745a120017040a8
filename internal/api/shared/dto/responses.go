package dto

import (
	"strconv"
	"time"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/overlay"
)

// RoundAllValue is how the every-round selection is rendered
const RoundAllValue = "all"

// SelectionParams echoes the normalized selection parameters a response was computed for
type SelectionParams struct {
	View         domain.View         `json:"view"`
	Year         int                 `json:"year"`
	Round        string              `json:"round"`
	Team         *domain.TeamCode    `json:"team"`
	Sort         domain.Sort         `json:"sort"`
	Lens         domain.Lens         `json:"lens"`
	SelectedType domain.SelectedType `json:"selected_type,omitempty"`
	SelectedKey  string              `json:"selected_key,omitempty"`
}

// OverlayResponse carries the overlay decision and, when visible, its payload
type OverlayResponse struct {
	State        overlay.State            `json:"state"`
	SelectedType domain.SelectedType      `json:"selected_type,omitempty"`
	SelectedKey  string                   `json:"selected_key,omitempty"`
	Pick         *PickDetailResponse      `json:"pick,omitempty"`
	Selection    *SelectionDetailResponse `json:"selection,omitempty"`
}

// DashboardResponse represents whichever view the dashboard selection names
type DashboardResponse struct {
	View       domain.View            `json:"view"`
	Picks      *PickListResponse      `json:"picks,omitempty"`
	Grid       *GridResponse          `json:"grid,omitempty"`
	Selections *SelectionListResponse `json:"selections,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string     `json:"status"`
	RefreshedAt *time.Time `json:"refreshed_at,omitempty"`
}

// MapSelectionToDTO echoes normalized selection parameters
func MapSelectionToDTO(s domain.Selection) SelectionParams {
	params := SelectionParams{
		View:         s.View,
		Year:         s.Year,
		Round:        RoundAllValue,
		Sort:         s.Sort,
		Lens:         s.Lens,
		SelectedType: s.SelectedType,
		SelectedKey:  s.SelectedKey,
	}
	if s.Round != domain.RoundAll {
		params.Round = strconv.Itoa(s.Round)
	}
	if s.HasTeam() {
		team := s.Team
		params.Team = &team
	}
	return params
}

// MapDecisionToDTO maps an overlay decision without payload
func MapDecisionToDTO(d overlay.Decision) OverlayResponse {
	resp := OverlayResponse{State: d.State}
	if d.Visible() && d.Selector != nil {
		resp.SelectedType = d.Selector.Type
		resp.SelectedKey = d.Selector.Key
	}
	return resp
}
