package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// envelope is the persisted JSON form of an index artifact. The token
// index itself stays opaque; the envelope just frames it together with
// the side tables and the raw chunk record.
type envelope struct {
	Version   int                     `json:"version"`
	BuildID   string                  `json:"buildId,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
	Index     json.RawMessage         `json:"index"`
	Lookup    map[string]lookupRecord `json:"lookup"`
	Store     map[string]string       `json:"store"`
	Chunks    []chunkRecord           `json:"chunks,omitempty"`
}

type lookupRecord struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Preview  string `json:"preview"`
	SourceID string `json:"sourceId"`
}

type chunkRecord struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Meta chunkMeta `json:"meta"`
}

type chunkMeta struct {
	SourceID  string   `json:"sourceId"`
	SectionID string   `json:"sectionId,omitempty"`
	Section   string   `json:"section,omitempty"`
	Topic     []string `json:"topic,omitempty"`
	Year      int      `json:"year,omitempty"`
}

// encodeArtifact marshals an artifact into the envelope JSON.
func encodeArtifact(artifact *driven.IndexArtifact) ([]byte, error) {
	env := envelope{
		Version:   artifact.Version,
		BuildID:   artifact.BuildID,
		CreatedAt: artifact.CreatedAt.UTC(),
		Index:     json.RawMessage(artifact.Blob),
		Lookup:    make(map[string]lookupRecord, len(artifact.Lookup)),
		Store:     artifact.Store,
	}
	for id, entry := range artifact.Lookup {
		env.Lookup[id] = lookupRecord(entry)
	}
	for _, ch := range artifact.Chunks {
		env.Chunks = append(env.Chunks, chunkRecord{
			ID:   ch.ID,
			Text: ch.Text,
			Meta: chunkMeta{
				SourceID:  ch.DocumentID,
				SectionID: ch.SectionID,
				Section:   string(ch.Section),
				Topic:     ch.Topics,
				Year:      ch.Year,
			},
		})
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding artifact envelope: %w", err)
	}
	return data, nil
}

// decodeArtifact unmarshals envelope JSON back into an artifact.
func decodeArtifact(data []byte) (*driven.IndexArtifact, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding artifact envelope: %w", err)
	}

	artifact := &driven.IndexArtifact{
		Version:   env.Version,
		BuildID:   env.BuildID,
		CreatedAt: env.CreatedAt,
		Blob:      []byte(env.Index),
		Lookup:    make(map[string]driven.LookupEntry, len(env.Lookup)),
		Store:     env.Store,
	}
	for id, rec := range env.Lookup {
		artifact.Lookup[id] = driven.LookupEntry(rec)
	}
	for _, ch := range env.Chunks {
		pos := 0
		fmt.Sscanf(chunkOrdinal(ch.ID), "%d", &pos) //nolint:errcheck // best effort
		artifact.Chunks = append(artifact.Chunks, domain.Chunk{
			ID:         ch.ID,
			DocumentID: ch.Meta.SourceID,
			Text:       ch.Text,
			Position:   pos,
			SectionID:  ch.Meta.SectionID,
			Section:    domain.SectionType(ch.Meta.Section),
			Topics:     ch.Meta.Topic,
			Year:       ch.Meta.Year,
		})
	}
	return artifact, nil
}

// chunkOrdinal returns the zero-padded ordinal part of a chunk id.
func chunkOrdinal(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '#' {
			return id[i+1:]
		}
	}
	return "0"
}
