package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// timeRounding trims sub-millisecond noise from printed durations.
const timeRounding = time.Millisecond

var (
	askScope string
	askJSON  bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one question and print the grounded answer",
	Long: `Runs the full answer pipeline for a single question: intent routing,
retrieval over the indexed content, and generation with citations back
to the source pages.

Use --scope to restrict retrieval to one source document, e.g. a
single project page:

  quill ask --scope search-engine "what stack does it use?"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askScope, "scope", "s", "", "restrict retrieval to one source document")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	answer, err := chatService.Ask(cmd.Context(), args[0], domain.AskOptions{Scope: askScope})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errors.New("question is empty")
		case errors.Is(err, domain.ErrGeneratorUnavailable):
			return errors.New("no generator configured; run 'quill config set generator.provider anthropic' or 'ollama'")
		case errors.Is(err, domain.ErrGeneration):
			return errors.New("the generator failed to produce an answer; try again")
		default:
			return fmt.Errorf("ask failed: %w", err)
		}
	}

	if askJSON {
		return printAnswerJSON(cmd, answer)
	}
	printAnswer(cmd, answer)
	return nil
}

func printAnswer(cmd *cobra.Command, answer *domain.Answer) {
	cmd.Println(answer.Text)
	if len(answer.Citations) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i, c := range answer.Citations {
			cmd.Printf("  [%d] %s - %s\n", i+1, c.Title, c.SourceURL)
		}
	}
}

func printAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	out := struct {
		Text      string            `json:"text"`
		Citations []domain.Citation `json:"citations,omitempty"`
		Intent    string            `json:"intent"`
		Tone      string            `json:"tone,omitempty"`
		Grounded  bool              `json:"grounded"`
	}{
		Text:      answer.Text,
		Citations: answer.Citations,
		Intent:    answer.Intent.String(),
		Tone:      string(answer.Tone),
		Grounded:  answer.Grounded,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
