// Package textkit provides the small text utilities shared across the
// classification pipeline: normalisation, sentence splitting,
// order-preserving de-duplication and the content fingerprint hash.
//
// Everything here is deterministic: identical input always yields identical
// output, which the classifier and orchestrator rely on.
package textkit

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Normalize lowercases a string and collapses runs of whitespace to single
// spaces. Used both for keyword matching and as the de-duplication key.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// SplitSentences splits content into sentences on terminal punctuation.
func SplitSentences(content string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range content {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	// Don't forget the last sentence
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// DedupePreserveOrder removes duplicates while keeping the first occurrence
// of each entry. Entries are compared by their normalised form.
func DedupePreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		key := Normalize(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}

	return result
}

// Fingerprint hashes the given parts into a fixed-width hex string using
// FNV-1a 64. It is fast and non-cryptographic: the result is a
// cache-invalidation key, not a security boundary, so collisions are
// accepted. Each part is terminated so that ["ab","c"] and ["a","bc"] hash
// differently.
func Fingerprint(parts []string) string {
	h := fnv.New64a()
	for _, part := range parts {
		h.Write([]byte(part)) //nolint:errcheck // fnv never errors
		h.Write([]byte{'\n'}) //nolint:errcheck
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
