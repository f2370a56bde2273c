// Package services implements the driving port interfaces.
// Services contain the core pipeline logic - ingestion, retrieval,
// intent routing, tone selection, prompt assembly, and citation
// extraction - and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond the
// standard library.
package services
