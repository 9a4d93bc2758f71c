package cli

import (
	"fmt"

	"github.com/alexanderramin/liftoff/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the Gemini API key used for AI workouts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <api-key>",
			Short: "Store the Gemini API key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Credentials.Save(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ Gemini key saved.")+"\n")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether a Gemini API key is available",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCredentialStatus(app.Credentials.Source(cmd.Context())))
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored Gemini API key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Credentials.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.Dim("Stored Gemini key removed.")+"\n")
				return nil
			},
		},
	)

	return cmd
}
