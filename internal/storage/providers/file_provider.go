// Package providers contains concrete storage.Provider implementations.
package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"calgrid/internal/model"
)

// FileProvider stores the event collection as a single JSON file.
type FileProvider struct {
	path string
}

// NewFileProvider returns a provider persisting to the given path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Load reads the stored collection.
//
// A missing file and unparseable contents both load as the empty
// collection; the latter is logged, since it means existing data will be
// overwritten on the next save. Only real I/O failures (e.g. permission
// errors) are returned.
func (p *FileProvider) Load() (model.EventList, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.EventList{}, nil
		}
		return model.EventList{}, fmt.Errorf("cannot read event file '%s': %w", p.path, err)
	}

	var events []*model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		log.Warn().Err(err).Str("file", p.path).Msg("stored event data is corrupt, starting with an empty collection")
		return model.EventList{}, nil
	}
	return model.EventList{Events: events}, nil
}

// Save writes the full collection, atomically via a temp file in the
// same directory and a rename over the target.
func (p *FileProvider) Save(list model.EventList) error {
	events := list.Events
	if events == nil {
		events = []*model.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal events: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("cannot create directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".calgrid-events-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temp file: %w", err)
	}

	if err := os.Rename(tmpName, p.path); err != nil {
		return fmt.Errorf("cannot move temp file into place: %w", err)
	}
	return nil
}
