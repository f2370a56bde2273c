// Package cli provides the command-line interface for Quill.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quillworks/quill-cli/internal/core/ports/driven"
	"github.com/quillworks/quill-cli/internal/core/ports/driving"
	"github.com/quillworks/quill-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// verboseFlag enables debug logging on every command.
var verboseFlag bool

// Services wired by main. Commands nil-check the ones they need so a
// partially wired binary fails with a clear message instead of a panic.
var (
	ingestService    driving.IngestService
	retrievalService driving.RetrievalService
	chatService      driving.ChatService
	configStore      driven.ConfigStore
	promptStore      driven.PromptStore
)

// Services bundles everything the commands need.
type Services struct {
	Ingest    driving.IngestService
	Retrieval driving.RetrievalService
	Chat      driving.ChatService
	Config    driven.ConfigStore
	Prompts   driven.PromptStore
}

// SetServices wires the service implementations into the commands.
func SetServices(s Services) {
	ingestService = s.Ingest
	retrievalService = s.Retrieval
	chatService = s.Chat
	configStore = s.Config
	promptStore = s.Prompts
}

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Ask questions about your portfolio content",
	Long: `Quill indexes the markdown and JSON content behind a personal
portfolio site and answers questions about it, grounded in the indexed
text with citations back to the source pages.

Typical flow:
  quill ingest           # build the index from the content directory
  quill ask "question"   # one-shot grounded answer
  quill chat             # interactive session`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command with the given build version.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}
