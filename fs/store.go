// Package fs provides a filesystem sink for extraction results.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/webonehq/webone"
)

// Ensure Store implements webone.ResultStore at compile time.
var _ webone.ResultStore = (*Store)(nil)

// Store writes extraction results as JSON files. Files are named by a hash
// of the source URL so repeated extractions of the same page overwrite the
// previous record.
type Store struct {
	dir string
}

// NewStore creates a Store writing into dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file path a result for url is written to.
func (s *Store) Path(url string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(url)))
}

// SaveResult writes the result as an indented JSON file.
func (s *Store) SaveResult(ctx context.Context, result *webone.Result) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path(result.Header.URL), data, 0644)
}
