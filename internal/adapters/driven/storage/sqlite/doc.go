// Package sqlite provides the SQLite-backed implementation of the
// IndexStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. One database
// holds the serialized index envelope plus relational side tables
// (chunk lookup, chunk text, metadata) for per-id access by health and
// admin collaborators.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Atomicity
//
// Save runs inside a single transaction: either the whole artifact
// (envelope, both side tables, metadata record) becomes visible, or
// none of it does. Readers using the previous artifact keep it until
// their transaction ends.
//
// # Data Location
//
// By default, the database is stored at ~/.quill/data/index.db
package sqlite
