package domain

import "time"

// IndexMetadata is the record written after every successful ingestion,
// read by the status command and other health collaborators.
type IndexMetadata struct {
	// Version is the index artifact format version.
	Version int

	// BuildID identifies the ingestion run that built the index.
	BuildID string

	// LastIndexedAt is when the index was last rebuilt.
	LastIndexedAt time.Time

	// ChunkCount is the number of chunks in the index.
	ChunkCount int

	// SourceCount is the number of source documents.
	SourceCount int
}

// IngestReport summarizes a completed ingestion run.
type IngestReport struct {
	// BuildID identifies this ingestion run.
	BuildID string

	// Documents is the number of source documents ingested.
	Documents int

	// Chunks is the number of chunks produced.
	Chunks int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}
