package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/api/shared/dto"
	apierrors "github.com/hoopsledger/pickboard/internal/api/shared/errors"
	"github.com/hoopsledger/pickboard/internal/api/shared/executor"
	"github.com/hoopsledger/pickboard/internal/cli"
	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/mocks"
)

var cliNow = time.Date(2027, time.August, 4, 12, 0, 0, 0, time.UTC)

type testCLI struct {
	exec   *mocks.MockAPIExecutor
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	closed bool
	opened bool
}

func setupTestCLI(t *testing.T) *testCLI {
	return &testCLI{
		exec:   mocks.NewMockAPIExecutor(gomock.NewController(t)),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

func (tc *testCLI) run(t *testing.T, clock adapter.Clock, args ...string) error {
	t.Helper()

	factory := func(context.Context, string, string) (executor.Executor, func(), error) {
		tc.opened = true
		return tc.exec, func() { tc.closed = true }, nil
	}

	root := cli.NewRootCommand(factory, clock, adapter.NewJSON())
	root.SetOut(tc.stdout)
	root.SetErr(tc.stderr)
	root.SetArgs(args)
	return cli.Execute(context.Background(), root)
}

func fixedClock(t *testing.T) adapter.Clock {
	clock := mocks.NewMockClock(gomock.NewController(t))
	clock.EXPECT().Now().Return(cliNow).AnyTimes()
	return clock
}

func TestPicksCommand(t *testing.T) {
	tc := setupTestCLI(t)

	team := domain.TeamCode("NYK")
	refreshed := cliNow.Add(-72 * time.Hour)
	sel := domain.Selection{View: domain.ViewPicks, Year: 2028, Team: team, Sort: domain.SortRisk, Lens: domain.LensAll}

	tc.exec.EXPECT().
		NormalizeSelection(domain.RawSelection{View: "picks", Year: "2028", Team: "nyk", Sort: "risk", Lens: "all"}).
		Return(sel)
	tc.exec.EXPECT().GetPicks(gomock.Any(), sel).Return(&dto.PickListResponse{
		Selection: dto.MapSelectionToDTO(sel),
		Picks: []dto.PickSummaryResponse{{
			PickKey:              "NYK-2028-1",
			CurrentTeamCode:      "LAL",
			PickStatus:           domain.PickStatusConditional,
			IsSwap:               true,
			HasConditional:       true,
			ProtectionsSummary:   "Top-4 protected",
			AssetLineCount:       2,
			ProvenanceTradeCount: 1,
			OwnershipRiskScore:   5,
		}},
		Total:              1,
		CoverageGaps:       []string{"NYK-2028-2"},
		MissingEndnoteRefs: []int64{11},
		RefreshedAt:        &refreshed,
	}, nil)

	err := tc.run(t, fixedClock(t), "picks", "--year", "2028", "--team", "nyk", "--sort", "risk")
	require.NoError(t, err)

	out := tc.stdout.String()
	assert.Contains(t, out, "NYK-2028-1")
	assert.Contains(t, out, "LAL")
	assert.Contains(t, out, "Conditional")
	assert.Contains(t, out, "SC")
	assert.Contains(t, out, "Top-4 protected")
	assert.Contains(t, out, "sort=risk")
	assert.Contains(t, out, "Coverage gaps")
	assert.Contains(t, out, "NYK-2028-2")
	assert.Contains(t, out, "Missing endnotes")
	assert.Contains(t, out, "3 days ago")
	assert.True(t, tc.opened)
	assert.True(t, tc.closed)
}

func TestGridCommand(t *testing.T) {
	tc := setupTestCLI(t)

	sel := domain.Selection{View: domain.ViewGrid, Year: 2028, Sort: domain.SortBoard, Lens: domain.LensCritical}
	tc.exec.EXPECT().NormalizeSelection(gomock.Any()).Return(sel)
	tc.exec.EXPECT().GetGrid(gomock.Any(), sel).Return(&dto.GridResponse{
		Selection: dto.MapSelectionToDTO(sel),
		Years:     []int{2028, 2029},
		Rounds:    []int{1},
		Teams: []dto.GridTeamResponse{{
			TeamCode:  "NYK",
			RiskTotal: 6,
			Rounds: []dto.GridRoundResponse{{
				DraftRound: 1,
				Cells: []*dto.GridCellResponse{
					{PickKey: "NYK-2028-1", CellText: "To OKC", OwnershipRiskScore: 6},
					nil,
				},
			}},
		}},
	}, nil)

	require.NoError(t, tc.run(t, fixedClock(t), "grid", "--lens", "critical"))

	out := tc.stdout.String()
	assert.Contains(t, out, "Ownership grid")
	assert.Contains(t, out, "2029")
	assert.Contains(t, out, "To OKC")
	assert.Contains(t, out, "·")
	assert.Contains(t, out, "refresh time unknown")
}

func TestSelectionsCommand(t *testing.T) {
	tc := setupTestCLI(t)

	sel := domain.Selection{View: domain.ViewSelections, Year: 2024, Round: 1, Sort: domain.SortBoard, Lens: domain.LensAll}
	tc.exec.EXPECT().
		NormalizeSelection(domain.RawSelection{View: "selections", Year: "2024", Round: "1", Sort: "board", Lens: "all"}).
		Return(sel)
	tc.exec.EXPECT().GetSelections(gomock.Any(), sel).Return(&dto.SelectionListResponse{
		Selection: dto.MapSelectionToDTO(sel),
		Lanes: []dto.SeverityLaneResponse{{
			Severity: domain.SeverityDeepChain,
			Rows: []dto.SelectionRowResponse{{
				TransactionID:        901,
				DraftRound:           1,
				PickNumber:           3,
				PlayerName:           "Alex Carter",
				TeamCode:             "HOU",
				ProvenanceTradeCount: 3,
				ProvenanceRiskScore:  4,
				Severity:             domain.SeverityDeepChain,
			}},
		}},
		SeverityCounts: map[domain.SeverityLane]int{domain.SeverityDeepChain: 1, domain.SeverityWithTrade: 0, domain.SeverityClean: 0},
		Total:          1,
	}, nil)

	require.NoError(t, tc.run(t, fixedClock(t), "selections", "--year", "2024", "--round", "1"))

	out := tc.stdout.String()
	assert.Contains(t, out, "deep_chain=1")
	assert.Contains(t, out, "with_trade=0")
	assert.Contains(t, out, "Alex Carter")
	assert.Contains(t, out, "3rd")
	assert.Contains(t, out, "901")
}

func TestPickCommand(t *testing.T) {
	tc := setupTestCLI(t)

	explanation := "Swap rights with OKC"
	tc.exec.EXPECT().
		GetPick(gomock.Any(), domain.NewPickKey("NYK", 2028, 1)).
		Return(&dto.PickDetailResponse{
			Pick: dto.PickSummaryResponse{PickKey: "NYK-2028-1", CurrentTeamCode: "OKC", PickStatus: domain.PickStatusTraded},
			AssetLines: []dto.AssetLineResponse{{
				AssetSlot:             1,
				AssetType:             domain.AssetTypeTradedOut,
				CounterpartyTeamCodes: []domain.TeamCode{"OKC", "HOU"},
				EffectiveEndnoteIDs:   []int64{10},
			}},
			Provenance:            []dto.ProvenanceEdgeResponse{{TradeID: 77, FromTeamCode: "NYK", ToTeamCode: "OKC"}},
			Endnotes:              []dto.EndnoteResponse{{EndnoteID: 10, Explanation: &explanation}},
			MissingDependencyRefs: []int64{20},
		}, nil)

	require.NoError(t, tc.run(t, fixedClock(t), "pick", "nyk-2028-1"))

	out := tc.stdout.String()
	assert.Contains(t, out, "NYK-2028-1")
	assert.Contains(t, out, "OKC,HOU")
	assert.Contains(t, out, "77")
	assert.Contains(t, out, "#10")
	assert.Contains(t, out, explanation)
	assert.Contains(t, out, "Missing endnotes")
}

func TestPickCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		setup   func(exec *mocks.MockAPIExecutor)
		wantErr string
	}{
		{
			name:    "malformed key",
			args:    []string{"pick", "NYK-28-1"},
			setup:   func(exec *mocks.MockAPIExecutor) {},
			wantErr: "invalid pick key",
		},
		{
			name: "no rows",
			args: []string{"pick", "BOS-2030-2"},
			setup: func(exec *mocks.MockAPIExecutor) {
				exec.EXPECT().GetPick(gomock.Any(), domain.NewPickKey("BOS", 2030, 2)).Return(nil, nil)
			},
			wantErr: "pick not found: BOS-2030-2",
		},
		{
			name: "database error shows message",
			args: []string{"pick", "BOS-2030-2"},
			setup: func(exec *mocks.MockAPIExecutor) {
				exec.EXPECT().GetPick(gomock.Any(), gomock.Any()).Return(nil, apierrors.NewDatabaseError("Failed to list asset rows: timeout"))
			},
			wantErr: "Failed to list asset rows: timeout",
		},
		{
			name:    "missing key",
			args:    []string{"pick"},
			setup:   func(exec *mocks.MockAPIExecutor) {},
			wantErr: "accepts 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := setupTestCLI(t)
			tt.setup(tc.exec)

			err := tc.run(t, fixedClock(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, tc.stderr.String(), tt.wantErr)
			assert.Empty(t, tc.stdout.String())
		})
	}
}

func TestJSONOutput(t *testing.T) {
	tc := setupTestCLI(t)

	sel := domain.Selection{View: domain.ViewPicks, Year: 2028, Sort: domain.SortBoard, Lens: domain.LensAll}
	tc.exec.EXPECT().NormalizeSelection(gomock.Any()).Return(sel)
	tc.exec.EXPECT().GetPicks(gomock.Any(), sel).Return(&dto.PickListResponse{
		Selection: dto.MapSelectionToDTO(sel),
		Picks:     []dto.PickSummaryResponse{{PickKey: "BOS-2028-1", EndnoteIDs: []int64{}}},
		Total:     1,
	}, nil)

	require.NoError(t, tc.run(t, fixedClock(t), "picks", "--json"))

	var body dto.PickListResponse
	require.NoError(t, json.Unmarshal(tc.stdout.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "BOS-2028-1", body.Picks[0].PickKey)
	assert.Equal(t, "all", body.Selection.Round)
}

func TestFactoryError(t *testing.T) {
	var stderr bytes.Buffer
	factory := func(context.Context, string, string) (executor.Executor, func(), error) {
		return nil, nil, errors.New("connection refused")
	}

	root := cli.NewRootCommand(factory, fixedClock(t), adapter.NewJSON())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"picks"})

	err := cli.Execute(context.Background(), root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open warehouse")
	assert.Contains(t, stderr.String(), "connection refused")
}
