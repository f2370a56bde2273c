// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under ~/.quill.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable prompt templates with live reload
package file
