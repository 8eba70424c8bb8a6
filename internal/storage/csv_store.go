package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/logger"
	"github.com/julianstephens/wellday/internal/models"
)

// CSVStore keeps the log in a comma-separated file. The whole file is read by Load
// and rewritten on every append.
type CSVStore struct {
	path    string
	entries []models.DailyEntry
	loaded  bool
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{
		path: path,
	}
}

// Init creates a header-only log if none exists. An existing log is left untouched.
func (s *CSVStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Persistence("stat log", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.Persistence("create log directory", err)
		}
	}

	logger.Info("Creating check-in log", "path", s.path)
	return s.write(nil)
}

func (s *CSVStore) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Persistence("open log", fmt.Errorf("log not initialized, run '%s init' first", constants.AppName))
		}
		return errors.Persistence("open log", err)
	}
	defer f.Close()

	entries, err := readEntries(f)
	if err != nil {
		return errors.Persistence("read "+s.path, err)
	}

	s.entries = entries
	s.loaded = true
	logger.Debug("Loaded check-in log", "path", s.path, "entries", len(entries))
	return nil
}

func readEntries(r io.Reader) ([]models.DailyEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		// an empty file is treated like a header-only one
		return []models.DailyEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	entries := []models.DailyEntry{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entry, err := DecodeEntry(record, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *CSVStore) Close() error {
	return nil
}

// AppendEntry adds e after the loaded entries and rewrites the file. The in-memory
// view only changes once the write succeeded.
func (s *CSVStore) AppendEntry(e models.DailyEntry) error {
	if !s.loaded {
		return errors.Persistence("append entry", fmt.Errorf("storage not loaded"))
	}

	next := make([]models.DailyEntry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	next = append(next, e)

	if err := s.write(next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

// write replaces the log through a temp file in the same directory so a failed
// write never leaves a truncated log behind.
func (s *CSVStore) write(entries []models.DailyEntry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Persistence("write log", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(constants.LogHeader); err != nil {
		tmp.Close()
		return errors.Persistence("write log", err)
	}
	for _, e := range entries {
		if err := w.Write(EncodeEntry(e)); err != nil {
			tmp.Close()
			return errors.Persistence("write log", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return errors.Persistence("write log", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Persistence("write log", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Persistence("write log", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Persistence("write log", err)
	}
	return nil
}

func (s *CSVStore) GetAllEntries() ([]models.DailyEntry, error) {
	if !s.loaded {
		return nil, errors.Persistence("get entries", fmt.Errorf("storage not loaded"))
	}
	out := make([]models.DailyEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *CSVStore) GetConfigPath() string {
	return s.path
}
