package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// historyLimit caps how many prior turns are sent with each question.
const historyLimit = 8

// answerMsg carries a completed pipeline run back into the update loop.
type answerMsg struct {
	answer *domain.Answer
	err    error
}

// App is the chat TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *Styles

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// transcript is the rendered conversation shown in the viewport.
	transcript []string

	// history is the raw turn list sent with each question.
	history []domain.Turn

	// scope restricts retrieval, when launched with one.
	scope string

	waiting bool
	err     error
	width   int
	height  int
	ready   bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new chat TUI with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Ask about the projects, writing, or teaching on this site"
	input.Focus()
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  DefaultStyles(),
		input:   input,
		spinner: sp,
	}, nil
}

// WithContext sets the context used for chat calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithScope restricts retrieval to one source document for the session.
func (a *App) WithScope(scope string) *App {
	a.scope = scope
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			if a.waiting {
				return a, nil
			}
			question := strings.TrimSpace(a.input.Value())
			if question == "" {
				return a, nil
			}
			a.appendUser(question)
			a.input.Reset()
			a.waiting = true
			a.err = nil
			return a, tea.Batch(a.spinner.Tick, a.ask(question))
		}

	case answerMsg:
		a.waiting = false
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.appendAnswer(msg.answer)
		return a, nil

	case spinner.TickMsg:
		if !a.waiting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Quill"))
	if a.scope != "" {
		b.WriteString(a.styles.Help.Render("  scope: " + a.scope))
	}
	b.WriteString("\n")
	b.WriteString(a.viewport.View())
	b.WriteString("\n")

	if a.waiting {
		b.WriteString(a.spinner.View())
		b.WriteString(a.styles.Help.Render(" thinking..."))
	} else if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	} else {
		b.WriteString(a.styles.Input.Width(a.width - 4).Render(a.input.View()))
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter: send  esc: quit"))
	return b.String()
}

// ask runs one pipeline call as a command.
func (a *App) ask(question string) tea.Cmd {
	history := a.history
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	opts := domain.AskOptions{Scope: a.scope, History: history}

	return func() tea.Msg {
		answer, err := a.ports.Chat.Ask(a.ctx, question, opts)
		return answerMsg{answer: answer, err: err}
	}
}

// appendUser records a sent question in transcript and history.
func (a *App) appendUser(question string) {
	a.transcript = append(a.transcript,
		a.styles.You.Render("You: ")+a.styles.Body.Render(question))
	a.history = append(a.history, domain.Turn{Role: "user", Content: question})
	a.refreshViewport()
}

// appendAnswer records a completed answer in transcript and history.
func (a *App) appendAnswer(answer *domain.Answer) {
	line := a.styles.Assistant.Render("Quill: ") + a.styles.Body.Render(answer.Text)
	a.transcript = append(a.transcript, line)

	if len(answer.Citations) > 0 {
		var cites []string
		for i, c := range answer.Citations {
			cites = append(cites, fmt.Sprintf("[%d] %s - %s", i+1, c.Title, c.SourceURL))
		}
		a.transcript = append(a.transcript,
			a.styles.Citation.Render(strings.Join(cites, "\n")))
	}

	a.history = append(a.history, domain.Turn{Role: "assistant", Content: answer.Text})
	a.refreshViewport()
}

// layout sizes the viewport to the terminal, leaving room for the
// title, input box, and help line.
func (a *App) layout() {
	const chrome = 6
	height := a.height - chrome
	if height < 1 {
		height = 1
	}

	if !a.ready {
		a.viewport = viewport.New(a.width, height)
		a.ready = true
	} else {
		a.viewport.Width = a.width
		a.viewport.Height = height
	}
	a.input.Width = a.width - 8
	a.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (a *App) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(strings.Join(a.transcript, "\n\n"))
	a.viewport.GotoBottom()
}
