// Package tui provides the interactive chat terminal UI for Quill.
package tui

import (
	"errors"

	"github.com/quillworks/quill-cli/internal/core/ports/driving"
)

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("tui: chat service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Chat answers the user's questions.
	Chat driving.ChatService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
