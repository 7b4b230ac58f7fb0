// Package sqlite persists layered summaries inside per-case JSON envelope
// records in a SQLite database.
//
// The backing database handle is acquired inside each Get/Set call, never at
// construction time, so the adapter is constructible with zero external
// configuration. Writes are read-modify-write merges: the summary is set on
// the envelope while every sibling field a collaborator wrote survives
// untouched.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/caselens/internal/core/domain"
	"github.com/custodia-labs/caselens/internal/core/ports/driven"
)

// summaryField is the envelope key owned by this adapter. Every other
// envelope field belongs to collaborators and is preserved on write.
const summaryField = "layeredSummary"

// Ensure Cache implements the interface.
var _ driven.SummaryCache = (*Cache)(nil)

// Cache is the SQLite-backed implementation of driven.SummaryCache.
type Cache struct {
	dataDir string
}

// New creates a SQLite summary cache rooted at dataDir. No file or database
// handle is touched here; acquisition is deferred to call time. If dataDir
// is empty, Get and Set resolve ~/.caselens/data on each call.
func New(dataDir string) *Cache {
	return &Cache{dataDir: dataDir}
}

// Get retrieves the cached summary for a case.
// Returns domain.ErrNotFound when no envelope or no summary field exists.
func (c *Cache) Get(ctx context.Context, caseID, orgID string) (*domain.LayeredSummary, error) {
	db, err := c.open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	defer db.Close() //nolint:errcheck

	envelope, err := readEnvelope(ctx, db, caseID, orgID)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[summaryField]
	if !ok {
		return nil, domain.ErrNotFound
	}

	var summary domain.LayeredSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("unmarshalling summary: %w", err)
	}
	return &summary, nil
}

// Set merges the summary into the case's envelope record, creating the
// envelope when absent and preserving all sibling fields.
func (c *Cache) Set(ctx context.Context, caseID, orgID string, summary *domain.LayeredSummary) error {
	db, err := c.open()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	defer db.Close() //nolint:errcheck

	return c.merge(ctx, db, caseID, orgID, true, func(envelope map[string]json.RawMessage) error {
		raw, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshalling summary: %w", err)
		}
		envelope[summaryField] = raw
		return nil
	})
}

// Clear removes the summary field from the case's envelope, leaving sibling
// fields in place. Clearing an absent envelope is a no-op.
func (c *Cache) Clear(ctx context.Context, caseID, orgID string) error {
	db, err := c.open()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	defer db.Close() //nolint:errcheck

	err = c.merge(ctx, db, caseID, orgID, false, func(envelope map[string]json.RawMessage) error {
		delete(envelope, summaryField)
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// open acquires the database handle for this call. The directory and schema
// are ensured on every acquisition; both operations are idempotent.
func (c *Cache) open() (*sql.DB, error) {
	dataDir := c.dataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".caselens", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "summaries.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS case_records (
			record_id  TEXT NOT NULL,
			case_id    TEXT NOT NULL,
			org_id     TEXT NOT NULL,
			envelope   TEXT NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (case_id, org_id)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return db, nil
}

// readEnvelope loads and decodes the envelope for a case.
func readEnvelope(
	ctx context.Context, db *sql.DB, caseID, orgID string,
) (map[string]json.RawMessage, error) {
	row := db.QueryRowContext(ctx, `
		SELECT envelope FROM case_records WHERE case_id = ? AND org_id = ?
	`, caseID, orgID)

	var encoded string
	if err := row.Scan(&encoded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning envelope: %w", err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(encoded), &envelope); err != nil {
		return nil, fmt.Errorf("unmarshalling envelope: %w", err)
	}
	if envelope == nil {
		envelope = make(map[string]json.RawMessage)
	}
	return envelope, nil
}

// merge performs a transactional read-modify-write of the envelope. When no
// envelope exists yet and createIfMissing is set, a new one is created with
// a fresh record id; otherwise domain.ErrNotFound is returned.
func (c *Cache) merge(
	ctx context.Context, db *sql.DB, caseID, orgID string,
	createIfMissing bool, mutate func(map[string]json.RawMessage) error,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	row := tx.QueryRowContext(ctx, `
		SELECT record_id, envelope FROM case_records WHERE case_id = ? AND org_id = ?
	`, caseID, orgID)

	recordID := uuid.NewString()
	envelope := make(map[string]json.RawMessage)

	var encoded string
	err = row.Scan(&recordID, &encoded)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if !createIfMissing {
			return domain.ErrNotFound
		}
		// New envelope; keep the fresh record id.

	case err != nil:
		return fmt.Errorf("scanning envelope: %w", err)

	default:
		if err := json.Unmarshal([]byte(encoded), &envelope); err != nil {
			return fmt.Errorf("unmarshalling envelope: %w", err)
		}
		if envelope == nil {
			envelope = make(map[string]json.RawMessage)
		}
	}

	if err := mutate(envelope); err != nil {
		return err
	}

	merged, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshalling envelope: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO case_records (record_id, case_id, org_id, envelope, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(case_id, org_id) DO UPDATE SET
			envelope = excluded.envelope,
			updated_at = excluded.updated_at
	`, recordID, caseID, orgID, string(merged), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving envelope: %w", err)
	}

	return tx.Commit()
}
