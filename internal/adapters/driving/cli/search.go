package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

var (
	searchLimit int
	searchScope string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed content without generation",
	Long: `Retrieves and ranks chunks from the lexical index without calling a
generator. Useful for checking what context a question would be
grounded in, and for debugging scoring.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultTopK, "maximum number of results")
	searchCmd.Flags().StringVarP(&searchScope, "scope", "s", "", "restrict retrieval to one source document")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	candidates, err := retrievalService.Retrieve(cmd.Context(), args[0], domain.RetrieveOptions{
		TopK:  searchLimit,
		Scope: searchScope,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoIndex) {
			return errors.New("no index found; run 'quill ingest' first")
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, candidates)
	}
	outputSearchTable(cmd, candidates)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, candidates []domain.Candidate) error {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, candidates []domain.Candidate) {
	if len(candidates) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, c := range candidates {
		cmd.Printf("  [%d] %s (%.3f)\n", i+1, c.Title, c.Score)
		cmd.Printf("      %s\n", c.ID)
		cmd.Printf("      %s\n", domain.ContextEntryFrom(c).Snippet)
		cmd.Println()
	}
}
