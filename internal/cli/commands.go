// Package cli implements pickctl, a terminal front end over the executor used by the REST API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoopsledger/pickboard/internal/adapter"
	apierrors "github.com/hoopsledger/pickboard/internal/api/shared/errors"
	"github.com/hoopsledger/pickboard/internal/api/shared/executor"
	"github.com/hoopsledger/pickboard/internal/domain"
)

// ExecutorFactory opens the executor for a command run.
// The returned close function is called once the command finishes.
type ExecutorFactory func(ctx context.Context, configFile, envPath string) (executor.Executor, func(), error)

type app struct {
	factory ExecutorFactory
	clock   adapter.Clock
	json    adapter.JSON

	exec    executor.Executor
	closeFn func()

	// persistent flags
	configFile string
	envPath    string
	theme      string
	asJSON     bool

	// selection flags
	year  string
	round string
	team  string
	sort  string
	lens  string
}

// NewRootCommand builds the pickctl command tree
func NewRootCommand(factory ExecutorFactory, clock adapter.Clock, jsonAdapter adapter.JSON) *cobra.Command {
	a := &app{factory: factory, clock: clock, json: jsonAdapter}

	root := &cobra.Command{
		Use:   "pickctl",
		Short: "Inspect draft asset ownership and provenance risk",
		Long: StyleTitle.Render("pickctl") + " - draft asset ownership board\n\n" +
			"Reads the warehouse and renders pick lists, the ownership grid and\n" +
			"historical selections with their provenance risk.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to configuration file")
	root.PersistentFlags().StringVar(&a.envPath, "env", "config/", "Path to environment files")
	root.PersistentFlags().StringVar(&a.theme, "theme", "auto", "Color theme (auto, dark, light)")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print the raw response as JSON")

	root.AddCommand(a.picksCmd(), a.gridCmd(), a.selectionsCmd(), a.pickCmd())

	return root
}

// Execute runs the command tree and prints a failure to stderr
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil {
		root.PrintErrln(StyleError.Render("✘ ") + errorMessage(err))
	}
	return err
}

func errorMessage(err error) string {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func (a *app) open(cmd *cobra.Command, _ []string) error {
	SetTheme(a.theme)

	exec, closeFn, err := a.factory(cmd.Context(), a.configFile, a.envPath)
	if err != nil {
		return fmt.Errorf("failed to open warehouse: %w", err)
	}
	a.exec = exec
	a.closeFn = closeFn
	return nil
}

func (a *app) close(_ *cobra.Command, _ []string) error {
	if a.closeFn != nil {
		a.closeFn()
		a.closeFn = nil
	}
	return nil
}

func (a *app) addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.year, "year", "", "Draft year (defaults to the next draft)")
	cmd.Flags().StringVar(&a.round, "round", "", "Draft round (1 or 2, empty for all)")
	cmd.Flags().StringVar(&a.team, "team", "", "Original team code, e.g. NYK")
	cmd.Flags().StringVar(&a.sort, "sort", string(domain.SortBoard), "Sort order (board, risk, provenance)")
	cmd.Flags().StringVar(&a.lens, "lens", string(domain.LensAll), "Risk lens (all, at_risk, critical)")
}

func (a *app) selection(view domain.View) domain.Selection {
	return a.exec.NormalizeSelection(domain.RawSelection{
		View:  string(view),
		Year:  a.year,
		Round: a.round,
		Team:  a.team,
		Sort:  a.sort,
		Lens:  a.lens,
	})
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	data, err := a.json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(append(data, '\n'))
	return err
}

func (a *app) picksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picks",
		Short: "List picks for a draft year",
		Long: `List the aggregated picks of one draft year with their owner, status and risk.

Examples:
  pickctl picks
  pickctl picks --year 2028 --team NYK
  pickctl picks --lens critical --sort risk`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.exec.GetPicks(cmd.Context(), a.selection(domain.ViewPicks))
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd, resp)
			}
			return RenderPicks(cmd.OutOrStdout(), resp, a.clock.Now())
		},
	}
	a.addSelectionFlags(cmd)
	return cmd
}

func (a *app) gridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show the ownership grid",
		Long: `Show each team's picks across the draft window starting at the selected year.

Examples:
  pickctl grid
  pickctl grid --year 2027 --lens at_risk --sort provenance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.exec.GetGrid(cmd.Context(), a.selection(domain.ViewGrid))
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd, resp)
			}
			return RenderGrid(cmd.OutOrStdout(), resp, a.clock.Now())
		},
	}
	a.addSelectionFlags(cmd)
	return cmd
}

func (a *app) selectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selections",
		Short: "List historical draft selections by severity",
		Long: `List the selections of a completed draft grouped into deep_chain, with_trade and clean lanes.

Examples:
  pickctl selections --year 2024
  pickctl selections --year 2024 --round 1 --lens critical`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.exec.GetSelections(cmd.Context(), a.selection(domain.ViewSelections))
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd, resp)
			}
			return RenderSelections(cmd.OutOrStdout(), resp)
		},
	}
	a.addSelectionFlags(cmd)
	return cmd
}

func (a *app) pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick KEY",
		Short: "Show asset lines, provenance and endnotes of one pick",
		Long: `Show the full detail of one pick identified by TEAM-YEAR-ROUND.

Examples:
  pickctl pick NYK-2028-1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := domain.ParsePickKey(strings.ToUpper(strings.TrimSpace(args[0])))
			if !ok {
				return fmt.Errorf("%w %q, expected TEAM-YEAR-ROUND", domain.ErrInvalidPickKey, args[0])
			}

			resp, err := a.exec.GetPick(cmd.Context(), key)
			if err != nil {
				return err
			}
			if resp == nil {
				return fmt.Errorf("%w: %s", domain.ErrPickNotFound, key)
			}
			if a.asJSON {
				return a.printJSON(cmd, resp)
			}
			return RenderPickDetail(cmd.OutOrStdout(), resp, a.clock.Now())
		},
	}
}
