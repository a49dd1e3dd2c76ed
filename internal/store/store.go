// Package store persists scrape results as indented JSON files. Each
// result gets its own timestamped file, and latest.json always mirrors
// the most recent one for the frontend to poll.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/24108244-ux/Websites-Scraper/internal/models"
)

// ErrNoData is returned by Latest when nothing has been scraped yet.
var ErrNoData = errors.New("no scraped data available")

const latestFile = "latest.json"

// Store writes scrape results under a single data directory.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the document to a fresh timestamped file and mirrors it to
// latest.json. It returns the path of the per-scrape file. A short uuid
// suffix keeps two scrapes in the same second from colliding.
func (s *Store) Save(doc *models.ScrapedDocument) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	name := fmt.Sprintf("scrape_%s_%s.json",
		time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, latestFile), data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", latestFile, err)
	}
	return path, nil
}

// Latest returns the most recently saved document, or ErrNoData when no
// scrape has been persisted yet.
func (s *Store) Latest() (*models.ScrapedDocument, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, latestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("reading %s: %w", latestFile, err)
	}

	var doc models.ScrapedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", latestFile, err)
	}
	return &doc, nil
}
