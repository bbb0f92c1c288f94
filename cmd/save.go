package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wryte/internal/adapters/terminal"
	"wryte/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a document",
	Long: `Save document content to a file, replacing the file if it exists.

Content comes from --content or, when that flag is absent, from piped stdin.
Without --path the document is written to the default location.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(saveCmd)

	saveCmd.Flags().StringP("path", "p", "", "Target file (default is $HOME/wryte_document.html)")
	saveCmd.Flags().StringP("content", "c", "", "Document content (read from stdin when omitted)")
}

func runSave(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	path, _ := cmd.Flags().GetString("path")
	content, _ := cmd.Flags().GetString("content")

	if !cmd.Flags().Changed("content") {
		var err error
		content, err = terminal.NewAdapter(cmd.InOrStdin()).ReadContent(cmd.Context())
		if err != nil {
			return err
		}
	}

	saveCommand := commands.NewSaveCommand(app.DocumentStore, app.PathResolver, app.Logger)
	result, err := saveCommand.Execute(cmd.Context(), commands.SaveRequest{
		Content: content,
		Path:    path,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Confirmation)
	return nil
}
