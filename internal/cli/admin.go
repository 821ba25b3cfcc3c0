package cli

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin commands (require the admin role)",
	}

	cmd.AddCommand(newAdminCredentialsCmd())
	cmd.AddCommand(newAdminWipeStatsCmd())

	return cmd
}

func newAdminCredentialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "List full roster rows including password hashes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []CredentialRow

			if err := client.Get("/api/v1/admin/credentials", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminWipeStatsCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe-stats",
		Short: "Delete every entry in the stat ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				out := NewOutput(cfg.Output)
				out.PrintMessage("Refusing to wipe without --yes")
				return nil
			}

			if err := client.Delete("/api/v1/admin/stats"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Stat ledger wiped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")

	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download CSV snapshots",
	}

	cmd.AddCommand(newExportStatsCmd())
	cmd.AddCommand(newExportPlayersCmd())

	return cmd
}

func newExportStatsCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Download the full stat ledger as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return downloadCSV("/api/v1/export/stats", outFile, "all_stats.csv")
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Output file")

	return cmd
}

func newExportPlayersCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Download the player table as CSV (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return downloadCSV("/api/v1/admin/export/players", outFile, "players_info.csv")
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Output file")

	return cmd
}

func downloadCSV(path, outFile, fallback string) error {
	data, err := client.DoRaw(http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	if outFile == "" {
		outFile = fallback
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.PrintMessage("Saved to " + outFile)
	return nil
}
