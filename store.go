package divtrack

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Store owns the on-disk layout: a navigation file listing the instruments
// and one canonical sequence document per instrument under the data directory.
//
// Each instrument file is the unit of exclusive ownership during its own
// processing pass: it is read, transformed, and written back whole, so there
// are no partial writes to reason about.
type Store struct {
	dataDir string
	navFile string
}

// NewStore returns a store rooted at the given data directory and navigation file.
func NewStore(dataDir, navFile string) *Store {
	return &Store{dataDir: dataDir, navFile: navFile}
}

// Instruments loads the navigation file.
func (s *Store) Instruments() ([]Instrument, error) {
	f, err := os.Open(s.navFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open navigation file %q: %w", s.navFile, err)
	}
	defer f.Close()
	return DecodeInstruments(s.navFile, f)
}

// SaveInstruments writes the navigation file back in canonical form.
func (s *Store) SaveInstruments(instruments []Instrument) error {
	if err := os.MkdirAll(filepath.Dir(s.navFile), 0755); err != nil {
		return fmt.Errorf("cannot create directory for %q: %w", s.navFile, err)
	}
	f, err := os.Create(s.navFile)
	if err != nil {
		return fmt.Errorf("cannot open navigation file %q for writing: %w", s.navFile, err)
	}
	defer f.Close()
	return EncodeInstruments(f, instruments)
}

// filename returns the canonical sequence document path for an instrument.
func (s *Store) filename(inst Instrument) string {
	return filepath.Join(s.dataDir, inst.Filename())
}

// Load reads the instrument's canonical sequence. A missing file is a valid
// empty sequence, not an error. skipped counts records dropped for parse
// failures.
func (s *Store) Load(inst Instrument) (seq Sequence, skipped int, err error) {
	f, err := os.Open(s.filename(inst))
	if os.IsNotExist(err) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("cannot open %q: %w", s.filename(inst), err)
	}
	defer f.Close()

	seq, skipped, err = DecodeSequence(f)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot decode %q: %w", s.filename(inst), err)
	}
	return seq, skipped, nil
}

// Save writes the instrument's canonical sequence, but only when the encoded
// bytes differ from what is already on disk. It reports whether a write
// happened, which is how callers count updated vs unchanged instruments.
func (s *Store) Save(inst Instrument, seq Sequence) (written bool, err error) {
	var buf bytes.Buffer
	if err := EncodeSequence(&buf, seq); err != nil {
		return false, fmt.Errorf("cannot encode sequence for %q: %w", inst.Symbol(), err)
	}

	filename := s.filename(inst)
	if existing, err := os.ReadFile(filename); err == nil && bytes.Equal(existing, buf.Bytes()) {
		return false, nil
	}

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return false, fmt.Errorf("cannot create data directory %q: %w", s.dataDir, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return false, fmt.Errorf("cannot write %q: %w", filename, err)
	}
	return true, nil
}
