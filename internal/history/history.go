// Package history keeps the ring buffer of recent quick downloads in a
// JSON file. The file is the only state; every operation re-reads it so
// the ring survives restarts and last-write-wins is acceptable for the
// single-user design.
package history

import (
	"encoding/json"
	"os"
	"time"

	"fjacquet/fattura-desk/internal/dateutils"
	"fjacquet/fattura-desk/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultFileName is the history file created in the working directory.
const DefaultFileName = "download_history.json"

// maxEntries caps the ring: only the newest entries are kept.
const maxEntries = 10

// Entry is one quick-download run with the invoices it brought in.
type Entry struct {
	Data    string                  `json:"data"`
	Ora     string                  `json:"ora"`
	Fatture []models.InvoiceSummary `json:"fatture"`
}

type historyFile struct {
	Downloads   []Entry `json:"downloads"`
	LastUpdated string  `json:"last_updated"`
}

// Ring reads and writes the download history file.
type Ring struct {
	path string
}

// New creates a ring backed by the given file path. The file is created
// lazily on the first write.
func New(path string) *Ring {
	if path == "" {
		path = DefaultFileName
	}
	return &Ring{path: path}
}

// load reads the history file. A missing or malformed file yields an
// empty history without error so a corrupted ring never blocks the
// application.
func (r *Ring) load() historyFile {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", r.path).Warn("Could not read download history")
		}
		return historyFile{}
	}

	var h historyFile
	if err := json.Unmarshal(data, &h); err != nil {
		log.WithError(err).WithField("path", r.path).Warn("Malformed download history, starting over")
		return historyFile{}
	}
	return h
}

// save writes the history file pretty-printed. It reports success with
// a boolean instead of an error, matching the fire-and-forget way the
// callers treat history writes.
func (r *Ring) save(h historyFile) bool {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		log.WithError(err).Error("Could not encode download history")
		return false
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		log.WithError(err).WithField("path", r.path).Error("Could not write download history")
		return false
	}
	return true
}

// AddDownload prepends a new entry stamped with the current date and
// time and truncates the ring to the newest entries. It returns false
// when the file could not be written.
func (r *Ring) AddDownload(fatture []models.InvoiceSummary) bool {
	h := r.load()

	now := time.Now()
	entry := Entry{
		Data:    now.Format(dateutils.LayoutISO),
		Ora:     now.Format("15:04:05"),
		Fatture: fatture,
	}

	h.Downloads = append([]Entry{entry}, h.Downloads...)
	if len(h.Downloads) > maxEntries {
		h.Downloads = h.Downloads[:maxEntries]
	}
	h.LastUpdated = now.Format(time.RFC3339)

	return r.save(h)
}

// RecentDownloads returns the newest entries, capped at limit when
// positive.
func (r *Ring) RecentDownloads(limit int) []Entry {
	h := r.load()
	if limit > 0 && limit < len(h.Downloads) {
		return h.Downloads[:limit]
	}
	return h.Downloads
}

// Clear replaces the ring with an empty list. It returns false when the
// file could not be written.
func (r *Ring) Clear() bool {
	h := r.load()
	h.Downloads = []Entry{}
	h.LastUpdated = time.Now().Format(time.RFC3339)
	return r.save(h)
}
