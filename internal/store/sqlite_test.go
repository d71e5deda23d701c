package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/ecotrack/internal/model"
)

func testSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "waste_log.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	s.now = func() time.Time { return time.Date(2025, 3, 15, 9, 30, 0, 0, time.Local) }
	return s
}

func TestSQLiteStoreSeedsEmptyDatabase(t *testing.T) {
	s := testSQLiteStore(t)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("seed len = %d, want 5", len(records))
	}
	if records[0].RecyclingKg != 45 || records[0].CompostKg != 20 || records[0].LandfillKg != 100 {
		t.Errorf("first seed record = %+v, want (45, 20, 100)", records[0])
	}
}

func TestSQLiteStoreAppendAndReload(t *testing.T) {
	s := testSQLiteStore(t)

	after, err := s.Append(5, 2, 3)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(after) != 6 {
		t.Fatalf("after append len = %d, want 6", len(after))
	}

	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	last := reloaded[len(reloaded)-1]
	if got, want := last.Date.Format("2006-01-02"), "2025-03-15"; got != want {
		t.Errorf("appended date = %s, want %s", got, want)
	}
	if !sameQuantities(last, model.WasteRecord{RecyclingKg: 5, CompostKg: 2, LandfillKg: 3}) {
		t.Errorf("appended record = %+v, want (5, 2, 3)", last)
	}
}

func TestSQLiteStoreReplaceRoundTrip(t *testing.T) {
	s := testSQLiteStore(t)

	written := []model.WasteRecord{
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), RecyclingKg: 1.5, CompostKg: 2.25, LandfillKg: 0},
		{Date: time.Date(2025, 2, 8, 0, 0, 0, 0, time.Local), RecyclingKg: 0, CompostKg: 0, LandfillKg: 42},
	}
	if err := s.Replace(written); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d records, want 2", len(loaded))
	}
	for i := range written {
		if !sameQuantities(loaded[i], written[i]) {
			t.Errorf("record %d = %+v, want %+v", i, loaded[i], written[i])
		}
	}
}

func TestSQLiteStoreRejectsNegative(t *testing.T) {
	s := testSQLiteStore(t)
	if _, err := s.Append(0, 0, -3); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("negative append err = %v, want ErrNegativeQuantity", err)
	}
}
