// Package index implements the lexical inverted index: a token to
// chunk-id mapping with prefix-oriented matching, so a query token
// matches any indexed token it is a prefix of ("lead" matches
// "leadership").
//
// The full type surface of the index is deliberately kept out of core;
// core sees only the builder/open/search capability interfaces defined
// in ports/driven.
package index
