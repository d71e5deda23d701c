package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/theirongolddev/ecotrack/internal/model"
)

const dateLayout = "2006-01-02"

// csvHeader is the fixed column layout of the waste log file.
var csvHeader = []string{"Date", "Recycling", "Compost", "Landfill"}

// seedRecords returns the starter dataset: five weekly entries ending today.
// Row i is dated i weeks before now, so insertion order is newest-date-first.
func seedRecords(now time.Time) []model.WasteRecord {
	recycling := []float64{45, 48, 50, 52, 40}
	compost := []float64{20, 22, 25, 28, 15}
	landfill := []float64{100, 95, 90, 85, 110}

	records := make([]model.WasteRecord, len(recycling))
	for i := range records {
		records[i] = model.WasteRecord{
			Date:        now.AddDate(0, 0, -7*i),
			RecyclingKg: recycling[i],
			CompostKg:   compost[i],
			LandfillKg:  landfill[i],
		}
	}
	return records
}

// FileStore keeps the record set in a CSV file. Writes replace the whole
// file via temp + rename so a failed write never corrupts the prior data.
// The mutex serializes writers within this process only; concurrent writers
// in separate processes race and the last full rewrite wins.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by the CSV file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load implements Store. A missing file is seeded with the starter dataset;
// an existing but malformed file is a *ReadError, never silently treated as
// empty.
func (s *FileStore) Load() ([]model.WasteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *FileStore) loadLocked() ([]model.WasteRecord, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		seed := seedRecords(s.now())
		if err := s.replaceLocked(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ReadError{Path: s.path, Err: errors.New("missing header row")}
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	records := make([]model.WasteRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, &ReadError{Path: s.path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append implements Store.
func (s *FileStore) Append(recyclingKg, compostKg, landfillKg float64) ([]model.WasteRecord, error) {
	if err := checkQuantities(recyclingKg, compostKg, landfillKg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	records = append(records, model.WasteRecord{
		Date:        s.now(),
		RecyclingKg: recyclingKg,
		CompostKg:   compostKg,
		LandfillKg:  landfillKg,
	})

	if err := s.replaceLocked(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Replace implements Store.
func (s *FileStore) Replace(records []model.WasteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(records)
}

func (s *FileStore) replaceLocked(records []model.WasteRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	tmpPath := s.path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	w := csv.NewWriter(f)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, csvHeader)
	for _, r := range records {
		rows = append(rows, formatRow(r))
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

func checkHeader(row []string) error {
	if len(row) != len(csvHeader) {
		return fmt.Errorf("expected %d columns, found %d", len(csvHeader), len(row))
	}
	for i, name := range csvHeader {
		if row[i] != name {
			return fmt.Errorf("expected column %q, found %q", name, row[i])
		}
	}
	return nil
}

func parseRow(row []string) (model.WasteRecord, error) {
	if len(row) != len(csvHeader) {
		return model.WasteRecord{}, fmt.Errorf("expected %d columns, found %d", len(csvHeader), len(row))
	}

	date, err := time.ParseInLocation(dateLayout, row[0], time.Local)
	if err != nil {
		return model.WasteRecord{}, fmt.Errorf("bad date %q: %w", row[0], err)
	}

	quantities := make([]float64, 3)
	for i, cell := range row[1:] {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return model.WasteRecord{}, fmt.Errorf("bad %s value %q: %w", csvHeader[i+1], cell, err)
		}
		quantities[i] = v
	}

	return model.WasteRecord{
		Date:        date,
		RecyclingKg: quantities[0],
		CompostKg:   quantities[1],
		LandfillKg:  quantities[2],
	}, nil
}

func formatRow(r model.WasteRecord) []string {
	return []string{
		r.Date.Format(dateLayout),
		strconv.FormatFloat(r.RecyclingKg, 'g', -1, 64),
		strconv.FormatFloat(r.CompostKg, 'g', -1, 64),
		strconv.FormatFloat(r.LandfillKg, 'g', -1, 64),
	}
}
