package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newAvatarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Avatar commands",
	}

	cmd.AddCommand(newAvatarPutCmd())
	cmd.AddCommand(newAvatarGetCmd())
	cmd.AddCommand(newAvatarDeleteCmd())

	return cmd
}

func newAvatarPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <file>",
		Short: "Upload a png or jpeg as your avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			contentType := contentTypeForFile(args[0])
			if contentType == "" {
				return fmt.Errorf("file must have a .png, .jpg or .jpeg extension")
			}

			_, err = client.DoRaw(http.MethodPut, "/api/v1/players/me/avatar", bytes.NewReader(data), contentType)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Avatar uploaded")
			return nil
		},
	}
}

func newAvatarGetCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Download a player's avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.DoRaw(http.MethodGet, "/api/v1/players/"+args[0]+"/avatar", nil, "")
			if err != nil {
				return err
			}

			if outFile == "" {
				outFile = args[0] + ".png"
			}
			if err := os.WriteFile(outFile, data, 0o644); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Saved to " + outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Output file (default <name>.png)")

	return cmd
}

func newAvatarDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove your avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/me/avatar"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Avatar removed")
			return nil
		},
	}
}

func contentTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return ""
	}
}
