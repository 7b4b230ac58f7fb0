// Package bundle loads case-bundle JSON files into the boundary DTOs.
//
// Parsing is tolerant at the boundary: every field except document ids is
// optional, unknown fields are ignored, and malformed optional values degrade
// to zero values via the DTO unmarshalers. Nothing deeper in the pipeline
// re-validates bundle input.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/logger"
)

// Load reads and parses a case bundle from a JSON file.
func Load(path string) (domain.CaseBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.CaseBundle{}, fmt.Errorf("reading bundle file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a case bundle from JSON. A bundle without a case id gets a
// generated one so downstream cache keys are never empty; the generated id
// changes per load, which keeps such bundles out of any persisted cache.
func Parse(data []byte) (domain.CaseBundle, error) {
	var b domain.CaseBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return domain.CaseBundle{}, fmt.Errorf("%w: parsing bundle: %v", domain.ErrInvalidInput, err)
	}

	if b.CaseID == "" {
		b.CaseID = uuid.NewString()
		logger.Debug("Bundle has no case id, generated %s", b.CaseID)
	}

	return b, nil
}
