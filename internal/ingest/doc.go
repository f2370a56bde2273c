// Package ingest implements the offline half of the pipeline: loading
// the corpus from the content directory, sanitizing and sectionizing
// document text, and splitting it into overlapping fixed-size chunks.
//
// Everything here is pure text processing; persistence and index
// construction are orchestrated by the ingest service.
package ingest
