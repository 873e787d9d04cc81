package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/webonehq/webone"
)

// Compile-time interface verification.
var _ webone.ResultStore = (*ResultService)(nil)

// ResultService persists extraction results using SQLite. The full record
// is stored as a JSON payload alongside the header columns used for
// lookups.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// hashPayload computes xxHash of the payload and returns a hex string.
func hashPayload(payload []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(payload))
	return hex.EncodeToString(b[:])
}

// SaveResult inserts a new row for the result. Earlier rows for the same
// URL are kept; FindResultByURL returns the most recent one.
func (s *ResultService) SaveResult(ctx context.Context, result *webone.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (id, url, status_code, status_msg, payload_hash, payload, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), result.Header.URL, result.Header.StatusCode, result.Header.StatusMsg,
		hashPayload(payload), string(payload), result.Header.ExtractedAt.Format(time.RFC3339Nano))

	return err
}

// FindResultByURL retrieves the most recent result for a URL.
// Returns ENOTFOUND if no result exists.
func (s *ResultService) FindResultByURL(ctx context.Context, url string) (*webone.Result, error) {
	var payload string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload
		FROM results
		WHERE url = ?
		ORDER BY extracted_at DESC, rowid DESC
		LIMIT 1
	`, url).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, webone.Errorf(webone.ENOTFOUND, "no result for %q", url)
	}
	if err != nil {
		return nil, err
	}

	var result webone.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored result: %w", err)
	}

	return &result, nil
}
