package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wryte/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the default document location",
	Long: `Show where documents are saved when no path is given.

If HOME is not set the default falls back to the current working directory;
this command makes that visible.`,
	Args: cobra.NoArgs,
	RunE: runWhere,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(whereCmd)

	whereCmd.Flags().StringP("output", "o", commands.OutputText, "Output format: text, json or yaml")
}

func runWhere(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	format, _ := cmd.Flags().GetString("output")

	result := commands.NewWhereCommand(app.PathResolver, app.Logger).Execute(cmd.Context())
	out, err := result.Render(format)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
