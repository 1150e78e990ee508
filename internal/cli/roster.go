package cli

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster commands",
	}

	cmd.AddCommand(newRosterListCmd())
	cmd.AddCommand(newRosterAddCmd())
	cmd.AddCommand(newRosterUpdateCmd())
	cmd.AddCommand(newRosterRemoveCmd())
	cmd.AddCommand(newRosterExportCmd())
	cmd.AddCommand(newRosterImportCmd())

	return cmd
}

func newRosterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all roster players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/roster", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <jersey>",
		Short: "Add a player to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jersey, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("jersey must be a number: %s", args[1])
			}

			body := map[string]any{
				"name":   args[0],
				"jersey": jersey,
			}

			var result Player
			if err := client.Post("/api/v1/roster", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <player-id> <name> <jersey>",
		Short: "Update a roster player",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			jersey, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("jersey must be a number: %s", args[2])
			}

			body := map[string]any{
				"name":   args[1],
				"jersey": jersey,
			}

			var result Player
			if err := client.Put("/api/v1/roster/"+args[0], body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRosterRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/roster/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player removed")
			return nil
		},
	}
}

func newRosterExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.GetRaw("/api/v1/roster/export")
			if err != nil {
				return err
			}

			if outFile == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Roster written to %s", outFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write to file instead of stdout")

	return cmd
}

func newRosterImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a roster from a JSON file, replacing the current roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			var result []Player
			if err := client.Do(http.MethodPost, "/api/v1/roster/import", rawJSON(data), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// rawJSON marks a body as pre-encoded JSON
type rawJSON []byte

// MarshalJSON returns the bytes unchanged
func (r rawJSON) MarshalJSON() ([]byte, error) {
	return r, nil
}
