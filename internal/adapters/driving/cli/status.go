package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index status",
	Long:  `Prints when the index was last rebuilt and what it contains.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	meta, err := ingestService.Status(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoIndex) {
			cmd.Println("No index yet. Run 'quill ingest' to build one.")
			return nil
		}
		return fmt.Errorf("reading status: %w", err)
	}

	cmd.Printf("Index version:  %d\n", meta.Version)
	if meta.BuildID != "" {
		cmd.Printf("Build:          %s\n", meta.BuildID)
	}
	cmd.Printf("Last indexed:   %s\n", meta.LastIndexedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("Chunks:         %d\n", meta.ChunkCount)
	cmd.Printf("Source docs:    %d\n", meta.SourceCount)
	return nil
}
