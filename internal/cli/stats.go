package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Stat ledger commands",
	}

	cmd.AddCommand(newStatsAddCmd())
	cmd.AddCommand(newStatsDeleteCmd())
	cmd.AddCommand(newStatsTotalsCmd())
	cmd.AddCommand(newStatsHistoryCmd())

	return cmd
}

func newStatsAddCmd() *cobra.Command {
	var date string
	var goals, rebounds, steals, blocks int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one game's numbers for yourself",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"date":     date,
				"goals":    goals,
				"rebounds": rebounds,
				"steals":   steals,
				"blocks":   blocks,
			}
			var result StatEntry

			if err := client.Post("/api/v1/stats", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Game date, YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&goals, "goals", 0, "Goals scored")
	cmd.Flags().IntVar(&rebounds, "rebounds", 0, "Rebounds")
	cmd.Flags().IntVar(&steals, "steals", 0, "Steals")
	cmd.Flags().IntVar(&blocks, "blocks", 0, "Blocks")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newStatsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete all of your entries for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/stats/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Entries deleted")
			return nil
		},
	}
}

func newStatsTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals <name>",
		Short: "Show a player's career totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatTotals

			if err := client.Get("/api/v1/players/"+args[0]+"/totals", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatsHistoryCmd() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "history <name>",
		Short: "Show a player's game history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []StatEntry

			if err := client.Get("/api/v1/players/"+args[0]+"/stats?order="+order, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "desc", "Sort order: asc or desc")

	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the league leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
