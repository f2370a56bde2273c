package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Rebuild the index from the content directory",
	Long: `Reads every markdown and JSON document in the content directory,
splits them into overlapping chunks, and writes a fresh lexical index.

The previous index stays queryable until the new one is fully written;
an empty content directory fails without touching the existing index.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	report, err := ingestService.Ingest(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoDocuments) {
			return errors.New("no documents found in the content directory; existing index left untouched")
		}
		return fmt.Errorf("ingest failed: %w", err)
	}

	// A fresh artifact invalidates any cached snapshot in this process.
	if retrievalService != nil {
		retrievalService.Invalidate()
	}

	cmd.Printf("Indexed %d chunks from %d documents in %s\n",
		report.Chunks, report.Documents, report.Duration.Round(timeRounding))
	return nil
}
