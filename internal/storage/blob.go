// Package storage persists rendered documents under a media root.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// SavedFile describes where a stored document ended up.
type SavedFile struct {
	Path         string `json:"file_path"`
	URL          string `json:"file_url"`
	AbsolutePath string `json:"absolute_path"`
}

// BlobStore writes blobs under Root and serves them below BaseURL.
type BlobStore struct {
	Root    string
	BaseURL string
}

func NewBlobStore(root, baseURL string) *BlobStore {
	return &BlobStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes data at name relative to the media root, replacing any
// existing file.
func (s *BlobStore) Save(name string, data []byte) (SavedFile, error) {
	rel := path.Join("index_cards", name)
	abs := filepath.Join(s.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return SavedFile{}, fmt.Errorf("creating media dir: %w", err)
	}
	if _, err := os.Stat(abs); err == nil {
		if err := os.Remove(abs); err != nil {
			return SavedFile{}, fmt.Errorf("replacing %s: %w", rel, err)
		}
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return SavedFile{}, fmt.Errorf("writing %s: %w", rel, err)
	}
	log.WithFields(log.Fields{"path": rel, "bytes": len(data)}).Info("stored rendered document")
	return SavedFile{
		Path:         rel,
		URL:          s.BaseURL + "/" + rel,
		AbsolutePath: abs,
	}, nil
}

// NormalizeFilename cleans a user-supplied filename: spaces become
// underscores and a .pdf suffix is guaranteed. Empty input gets a
// timestamped default.
func NormalizeFilename(filename string, now time.Time) string {
	clean := strings.TrimSpace(strings.ReplaceAll(filename, " ", "_"))
	if clean == "" {
		return fmt.Sprintf("index_cards_%s.pdf", now.Format("20060102_150405"))
	}
	if !strings.HasSuffix(strings.ToLower(clean), ".pdf") {
		clean += ".pdf"
	}
	return clean
}
