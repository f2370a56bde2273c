package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/quillworks/quill-cli/internal/core/ports/driven"
	"github.com/quillworks/quill-cli/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads prompt templates from user-editable files on disk.
// Templates are loaded from a configurable directory with fallback to
// embedded defaults.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor. This makes testing easier and avoids
// unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompt templates.
// These are used when user files don't exist and as the initial content
// for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptSystemBase: `You are the voice of this portfolio site. You answer questions about its owner's work, projects, writing, and teaching.

Answer ONLY from the context snippets provided with each question. Every snippet is numbered; when you use one, cite it inline as [n]. If the context does not contain the answer, say so plainly instead of guessing.

{{TONE}}

Keep answers short. Never invent projects, dates, employers, or numbers that are not in the context.`,

	driven.PromptToneProfessional: `Voice: professional and direct. Plain factual sentences, first person.`,

	driven.PromptToneNarrative: `Voice: narrative. Tell it the way the work actually unfolded - what the situation was, what was tried, what came of it. Still first person, still grounded in the context.`,

	driven.PromptTonePersonal: `Voice: personal and reflective. It is fine to mention what was hard, what was learned, and what you would do differently. First person, grounded in the context.`,

	driven.PromptInsufficientContext: `I don't have enough material on that to give you a grounded answer. Try asking about the projects, writing, or teaching listed on the site.`,

	driven.PromptSmallTalk: `Hi! I can answer questions about the work on this site - projects, writing, teaching. What would you like to know?`,

	driven.PromptContact: `The best way to get in touch is through the contact page, or book a slot directly at cal.com. Happy to talk about roles, collaborations, or anything on the site.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.quill/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".quill", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Watch reloads the cache whenever a prompt file changes on disk.
// It blocks until done is closed or the watcher fails; callers run it
// in a goroutine. Long-running surfaces (chat, MCP server) use this so
// edited prompts take effect without a restart.
func (s *PromptStore) Watch(done <-chan struct{}) error {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating prompt watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.promptDir); err != nil {
		return fmt.Errorf("watching prompt directory: %w", err)
	}

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".txt") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				logger.Debug("Prompt file changed: %s", filepath.Base(event.Name))
				s.Reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Prompt watcher error: %v", err)
		}
	}
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Quill Prompts

This directory contains customisable prompt templates used when Quill
answers questions about your portfolio.

## Files

- ` + "`system_base.txt`" + ` - Grounding system prompt (contains the {{TONE}} placeholder)
- ` + "`tone_professional.txt`" + ` - Default voice block
- ` + "`tone_narrative.txt`" + ` - Story-telling voice block
- ` + "`tone_personal.txt`" + ` - Reflective voice block (opt-in)
- ` + "`insufficient_context.txt`" + ` - Reply when retrieval finds nothing usable
- ` + "`small_talk.txt`" + ` - Canned reply for greetings
- ` + "`contact.txt`" + ` - Canned reply for contact and hiring questions

## Customisation

Edit any file to change the voice. A running chat or MCP session picks
up changes automatically; one-shot commands read the files fresh each
invocation.

Keep the ` + "`{{TONE}}`" + ` placeholder in ` + "`system_base.txt`" + ` - the selected
voice block is substituted there at answer time.
`
	return os.WriteFile(path, []byte(content), 0600)
}
