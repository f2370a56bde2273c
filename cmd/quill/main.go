// Quill answers questions about a personal portfolio, grounded in the
// markdown and JSON content behind the site. This binary wires the
// adapters to the core services and hands off to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/quillworks/quill-cli/internal/adapters/driven/ai"
	"github.com/quillworks/quill-cli/internal/adapters/driven/config/file"
	"github.com/quillworks/quill-cli/internal/adapters/driven/storage/sqlite"
	"github.com/quillworks/quill-cli/internal/adapters/driving/cli"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
	"github.com/quillworks/quill-cli/internal/core/services"
	"github.com/quillworks/quill-cli/internal/index"
	"github.com/quillworks/quill-cli/internal/ingest"
	"github.com/quillworks/quill-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

const defaultContentDir = "content"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("initialising prompt store: %w", err)
	}

	indexStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising index store: %w", err)
	}
	defer indexStore.Close()

	contentDir := configStore.GetString(file.KeyContentDir)
	if contentDir == "" {
		contentDir = defaultContentDir
	}
	loader := ingest.NewLoader(contentDir)

	var chunkerOpts []ingest.Option
	if size := configStore.GetInt(file.KeyChunkSize); size > 0 {
		chunkerOpts = append(chunkerOpts, ingest.WithChunkSize(size))
	}
	if overlap := configStore.GetInt(file.KeyChunkOverlap); overlap > 0 {
		chunkerOpts = append(chunkerOpts, ingest.WithOverlap(overlap))
	}
	chunker := ingest.NewDocumentChunker(chunkerOpts...)

	factory := index.Factory{}
	ingestService := services.NewIngestService(loader, chunker, indexStore, factory)
	retrievalService := services.NewRetrievalService(indexStore, factory, nil)

	generator, err := ai.CreateGenerator(configStore)
	if err != nil {
		logger.Warn("Generator unavailable: %v", err)
		generator = nil
	}

	assembler := services.NewPromptAssembler(promptStore)
	chatService := services.NewChatService(retrievalService, generator, assembler, services.ChatConfig{
		AllowPersonal: configStore.GetBool(file.KeyAllowPersonal),
		TopK:          configStore.GetInt(file.KeyTopK),
		MaxSnippets:   configStore.GetInt(file.KeyMaxSnippets),
		Generation: driven.GenerateOptions{
			MaxTokens: configStore.GetInt(file.KeyMaxTokens),
		},
	})

	cli.SetServices(cli.Services{
		Ingest:    ingestService,
		Retrieval: retrievalService,
		Chat:      chatService,
		Config:    configStore,
		Prompts:   promptStore,
	})

	return cli.Execute(version)
}
