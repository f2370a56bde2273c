package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/quillworks/quill-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Store persists index artifacts in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.quill/data/index.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".quill", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// WAL mode keeps the previous artifact readable while a Save
	// transaction rewrites it.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save persists the artifact atomically: the envelope, both side
// tables, and the metadata record are replaced in one transaction.
func (s *Store) Save(ctx context.Context, artifact *driven.IndexArtifact) error {
	if artifact == nil {
		return domain.ErrInvalidInput
	}

	payload, err := encodeArtifact(artifact)
	if err != nil {
		return err
	}

	sources := make(map[string]bool)
	for _, entry := range artifact.Lookup {
		sources[entry.SourceID] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, stmt := range []string{
		"DELETE FROM index_artifact",
		"DELETE FROM chunk_lookup",
		"DELETE FROM chunk_store",
		"DELETE FROM index_meta",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing previous artifact: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO index_artifact (id, version, build_id, created_at, payload)
		VALUES (1, ?, ?, ?, ?)
	`, artifact.Version, artifact.BuildID, artifact.CreatedAt.UTC(), payload); err != nil {
		return fmt.Errorf("saving artifact: %w", err)
	}

	for id, entry := range artifact.Lookup {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chunk_lookup (chunk_id, title, url, preview, source_id)
			VALUES (?, ?, ?, ?, ?)
		`, id, entry.Title, entry.URL, entry.Preview, entry.SourceID); err != nil {
			return fmt.Errorf("saving lookup entry %s: %w", id, err)
		}
	}

	for id, body := range artifact.Store {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chunk_store (chunk_id, body) VALUES (?, ?)
		`, id, body); err != nil {
			return fmt.Errorf("saving chunk text %s: %w", id, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO index_meta (id, version, build_id, last_indexed_at, chunk_count, source_count)
		VALUES (1, ?, ?, ?, ?, ?)
	`, artifact.Version, artifact.BuildID, artifact.CreatedAt.UTC(), len(artifact.Store), len(sources)); err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// Load fetches the current artifact. Returns domain.ErrNoIndex when
// nothing has been ingested yet.
func (s *Store) Load(ctx context.Context) (*driven.IndexArtifact, error) {
	var payload []byte
	row := s.db.QueryRowContext(ctx, "SELECT payload FROM index_artifact WHERE id = 1")
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoIndex
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}

	artifact, err := decodeArtifact(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	return artifact, nil
}

// Metadata returns the current metadata record without loading the
// full artifact.
func (s *Store) Metadata(ctx context.Context) (*domain.IndexMetadata, error) {
	var (
		meta      domain.IndexMetadata
		indexedAt time.Time
	)
	row := s.db.QueryRowContext(ctx, `
		SELECT version, build_id, last_indexed_at, chunk_count, source_count
		FROM index_meta WHERE id = 1
	`)
	if err := row.Scan(&meta.Version, &meta.BuildID, &indexedAt, &meta.ChunkCount, &meta.SourceCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoIndex
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	meta.LastIndexedAt = indexedAt.UTC()
	return &meta, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
