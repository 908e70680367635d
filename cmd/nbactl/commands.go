package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bryanfernandez-eng/nba-glass/internal/app"
	"github.com/bryanfernandez-eng/nba-glass/internal/config"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/logging"
	"github.com/bryanfernandez-eng/nba-glass/internal/usecase"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nbactl",
		Short:        "Query NBA season stats from the local dataset",
		SilenceUsage: true,
	}

	root.AddCommand(careerCmd())
	root.AddCommand(rankingsCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(exportCareersCmd())
	return root
}

// runWithEngine loads config and dataset, then hands the engine to fn.
// Logs go to stderr so stdout stays parseable.
func runWithEngine(cmd *cobra.Command, fn func(ctx context.Context, cfg config.Config, engine *app.Engine) (any, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	engine, err := app.LoadEngine(cfg, logger)
	if err != nil {
		return err
	}

	out, err := fn(cmd.Context(), cfg, engine)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func writeJSON(w io.Writer, v any) error {
	if w == nil {
		w = os.Stdout
	}
	raw, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}

func careerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "career <player>",
		Short: "Print career totals, averages and advanced stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithEngine(cmd, func(ctx context.Context, _ config.Config, engine *app.Engine) (any, error) {
				summary, err := engine.Players.GetCareerStats(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return careerToView(summary), nil
			})
		},
	}
}

func rankingsCmd() *cobra.Command {
	var (
		seasonID string
		minGames int
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "rankings <stat>",
		Short: "Rank players by a stat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithEngine(cmd, func(ctx context.Context, _ config.Config, engine *app.Engine) (any, error) {
				ranking, err := engine.Rankings.Rank(ctx, usecase.RankingQuery{
					Stat:     args[0],
					SeasonID: seasonID,
					MinGames: minGames,
					Limit:    limit,
				})
				if err != nil {
					return nil, err
				}
				return rankingToView(ranking), nil
			})
		},
	}
	cmd.Flags().StringVar(&seasonID, "season", "", "Season id such as 2022-23; empty ranks every season")
	cmd.Flags().IntVar(&minGames, "min-games", usecase.DefaultMinGames, "Minimum games played per row")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum entries; 0 keeps all")
	return cmd
}

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <player1> <player2>",
		Short: "Compare two careers stat by stat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithEngine(cmd, func(ctx context.Context, _ config.Config, engine *app.Engine) (any, error) {
				cmp, err := engine.Comparison.Compare(ctx, args[0], args[1])
				if err != nil {
					return nil, err
				}
				return comparisonToView(cmp), nil
			})
		},
	}
}

func exportCareersCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "export-careers",
		Short: "Print the career summary of every player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithEngine(cmd, func(ctx context.Context, cfg config.Config, engine *app.Engine) (any, error) {
				if !cmd.Flags().Changed("workers") {
					workers = cfg.ExportWorkers
				}
				summaries, err := engine.Players.ExportCareers(ctx, workers)
				if err != nil {
					return nil, err
				}
				out := make([]careerView, 0, len(summaries))
				for _, s := range summaries {
					out = append(out, careerToView(s))
				}
				return out, nil
			})
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size; defaults to EXPORT_WORKERS")
	return cmd
}
