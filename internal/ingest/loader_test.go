package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestLoader_MarkdownWithFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pilot-training.md", `+++
title = "Pilot Training Fix"
url = "/projects/pilot-training"
topics = ["aviation", "training"]
keywords = ["checkride", "instrument rating"]
year = 2021
+++

## Background

Fixed the syllabus in 2021.`)

	docs, err := NewLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "pilot-training", doc.ID)
	assert.Equal(t, "Pilot Training Fix", doc.Title)
	assert.Equal(t, "/projects/pilot-training", doc.URL)
	assert.Equal(t, []string{"aviation", "training"}, doc.Topics)
	assert.Equal(t, []string{"checkride", "instrument rating"}, doc.Keywords)
	assert.Equal(t, 2021, doc.Year)
	assert.Contains(t, doc.Content, "Fixed the syllabus")
}

func TestLoader_MarkdownDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Resume.md", "# My Resume\n\nShipped things in 2019 and beyond.")

	docs, err := NewLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "resume", doc.ID)
	assert.Equal(t, "My Resume", doc.Title)
	assert.Equal(t, "/resume", doc.URL)
	// Year derived from content when front matter is absent.
	assert.Equal(t, 2019, doc.Year)
}

func TestLoader_JSONDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "teaching.json", `{
		"id": "teaching",
		"title": "Teaching",
		"url": "/teaching",
		"topics": ["education"],
		"content": "Taught ground school for two years."
	}`)

	docs, err := NewLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "teaching", docs[0].ID)
	assert.Equal(t, "Taught ground school for two years.", docs[0].Content)
}

func TestLoader_JSONDataFileFlattened(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "talks.json", `{
		"id": "talks",
		"title": "Talks",
		"events": [
			{"name": "GopherCon", "topic": "retrieval"},
			{"name": "Local meetup", "topic": "chunking"}
		]
	}`)

	docs, err := NewLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0].Content, "events.name: GopherCon")
	assert.Contains(t, docs[0].Content, "events.topic: chunking")
}

func TestLoader_SkipsEmptyAndUnknownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.md", "   ")
	writeFile(t, dir, "notes.txt", "not loaded")
	writeFile(t, dir, "real.md", "# Real\n\ncontent")

	docs, err := NewLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "real", docs[0].ID)
}

func TestLoader_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "# B\n\nsecond")
	writeFile(t, dir, "a.md", "# A\n\nfirst")

	docs, err := NewLoader(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "b", docs[1].ID)
}

func TestLoader_MissingDirectory(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).Load(context.Background())
	assert.Error(t, err)
}
