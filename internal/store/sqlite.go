package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/theirongolddev/ecotrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteStore keeps the record set in a SQLite database. It is the optional
// backend for users who want their log in a queryable file; the contract is
// identical to FileStore, including seeding on first load.
type SQLiteStore struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
	now  func() time.Time
}

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening waste log db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load implements Store. An empty table counts as missing backing storage
// and is seeded with the starter dataset.
func (s *SQLiteStore) Load() ([]model.WasteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *SQLiteStore) loadLocked() ([]model.WasteRecord, error) {
	records, err := s.queryAll()
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	if len(records) > 0 {
		return records, nil
	}

	seed := seedRecords(s.now())
	if err := s.replaceLocked(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func (s *SQLiteStore) queryAll() ([]model.WasteRecord, error) {
	rows, err := s.db.Query(`SELECT logged_on, recycling_kg, compost_kg, landfill_kg
		FROM waste_log ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.WasteRecord
	for rows.Next() {
		var dateStr string
		var r model.WasteRecord
		if err := rows.Scan(&dateStr, &r.RecyclingKg, &r.CompostKg, &r.LandfillKg); err != nil {
			return nil, err
		}
		r.Date, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", dateStr, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Append implements Store.
func (s *SQLiteStore) Append(recyclingKg, compostKg, landfillKg float64) ([]model.WasteRecord, error) {
	if err := checkQuantities(recyclingKg, compostKg, landfillKg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	rec := model.WasteRecord{
		Date:        s.now(),
		RecyclingKg: recyclingKg,
		CompostKg:   compostKg,
		LandfillKg:  landfillKg,
	}

	_, err = s.db.Exec(`INSERT INTO waste_log (logged_on, recycling_kg, compost_kg, landfill_kg)
		VALUES (?, ?, ?, ?)`,
		rec.Date.Format(dateLayout), rec.RecyclingKg, rec.CompostKg, rec.LandfillKg,
	)
	if err != nil {
		return nil, &WriteError{Path: s.path, Err: err}
	}

	return append(records, rec), nil
}

// Replace implements Store. The swap happens in one transaction so a failed
// write leaves the prior dataset intact.
func (s *SQLiteStore) Replace(records []model.WasteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(records)
}

func (s *SQLiteStore) replaceLocked(records []model.WasteRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM waste_log"); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	for _, r := range records {
		_, err := tx.Exec(`INSERT INTO waste_log (logged_on, recycling_kg, compost_kg, landfill_kg)
			VALUES (?, ?, ?, ?)`,
			r.Date.Format(dateLayout), r.RecyclingKg, r.CompostKg, r.LandfillKg,
		)
		if err != nil {
			return &WriteError{Path: s.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}
