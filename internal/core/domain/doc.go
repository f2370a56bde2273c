// Package domain defines the core business entities for Quill.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A source unit of the corpus (write-up, resume, bio)
//   - Chunk: An overlapping span of a document's sanitized text
//   - Candidate: A scored retrieval hit, ephemeral per query
//   - ContextEntry: A ranked snippet handed to prompt assembly
//   - Intent, Tone: Routing and response-register classifications
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
