package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve document commands to a desktop shell over stdio",
	Long: `Read newline-delimited JSON requests from stdin and answer each on stdout.

Request:  {"id": 1, "cmd": "save_document_to_file", "args": {"content": "...", "filePath": "..."}}
Response: {"id": 1, "body": "Document saved to: ..."} or {"id": 1, "body": null, "error": "..."}

Commands: save_document_to_file, load_document_from_file, save_document,
load_document, greet.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Logger.InfoContext(ctx, "Serving shell commands on stdio")

	err := app.Dispatcher.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil && !errors.Is(err, ctx.Err()) {
		return fmt.Errorf("bridge stopped: %w", err)
	}
	return nil
}
