package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wryte/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Print a saved document",
	Long:  `Read a document file and write its content to stdout unchanged.`,
	Args:  cobra.NoArgs,
	RunE:  runLoad,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringP("path", "p", "", "Source file (default is $HOME/wryte_document.html)")
}

func runLoad(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path, _ := cmd.Flags().GetString("path")

	loadCommand := commands.NewLoadCommand(app.DocumentStore, app.PathResolver, app.Logger)
	result, err := loadCommand.Execute(cmd.Context(), commands.LoadRequest{Path: path})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), result.Content)
	return nil
}
