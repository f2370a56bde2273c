package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quillworks/quill-cli/internal/adapters/driving/tui"
)

var chatScope string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Launches the interactive terminal chat. Each question runs through
the full answer pipeline; recent turns are carried as conversation
context.

Controls:
  Enter - Send question
  Esc   - Quit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatScope, "scope", "s", "", "restrict retrieval to one source document")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	// Panic recovery keeps a terminal-state bug from eating the trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Edited prompt files take effect mid-session.
	if watcher, ok := promptStore.(promptWatcher); ok {
		done := make(chan struct{})
		defer close(done)
		go watcher.Watch(done) //nolint:errcheck // watch failure only disables live reload
	}

	app, err := tui.NewApp(&tui.Ports{Chat: chatService})
	if err != nil {
		return fmt.Errorf("failed to create chat UI: %w", err)
	}
	app.WithContext(cmd.Context()).WithScope(chatScope)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}

// promptWatcher is the optional live-reload capability of a prompt store.
type promptWatcher interface {
	Watch(done <-chan struct{}) error
}
