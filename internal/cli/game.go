package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Live game session commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameStatusCmd())
	cmd.AddCommand(newGameRecordCmd())
	cmd.AddCommand(newGameEndCmd())
	cmd.AddCommand(newGameDiscardCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	var (
		date    string
		coach   string
		players []string
	)

	cmd := &cobra.Command{
		Use:   "start <opponent>",
		Short: "Start a new game session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"opponent":       args[0],
				"coach_name":     coach,
				"date":           date,
				"active_players": players,
			}

			var result SessionState
			if err := client.Post("/api/v1/session", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Game date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&coach, "coach", "", "Coach name")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Active player IDs (comma separated)")

	return cmd
}

func newGameStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionState

			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <type> <player-id>...",
		Short: "Record a play (type: offense, defense, special)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playType := strings.ToLower(args[0])

			body := map[string]any{
				"type":    playType,
				"players": args[1:],
			}

			var result RecordResult
			if err := client.Post("/api/v1/session/plays", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current game session and archive it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionState

			if err := client.Post("/api/v1/session/end", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Discard the current game session without archiving",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/session"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session discarded")
			return nil
		},
	}
}
