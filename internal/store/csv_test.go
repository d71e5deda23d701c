package store

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/ecotrack/internal/model"
)

func testFileStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(filepath.Join(t.TempDir(), "waste_data.csv"))
	s.now = func() time.Time { return time.Date(2025, 3, 15, 9, 30, 0, 0, time.Local) }
	return s
}

func sameQuantities(a, b model.WasteRecord) bool {
	const tol = 1e-9
	return math.Abs(a.RecyclingKg-b.RecyclingKg) < tol &&
		math.Abs(a.CompostKg-b.CompostKg) < tol &&
		math.Abs(a.LandfillKg-b.LandfillKg) < tol
}

func TestFileStoreSeedsMissingFile(t *testing.T) {
	s := testFileStore(t)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("seed len = %d, want 5", len(records))
	}

	// First seed row is dated today, last four weeks back.
	if got, want := records[0].Date.Format("2006-01-02"), "2025-03-15"; got != want {
		t.Errorf("first seed date = %s, want %s", got, want)
	}
	if got, want := records[4].Date.Format("2006-01-02"), "2025-02-15"; got != want {
		t.Errorf("last seed date = %s, want %s", got, want)
	}
	if records[0].RecyclingKg != 45 || records[4].LandfillKg != 110 {
		t.Errorf("seed values changed: first=%+v last=%+v", records[0], records[4])
	}

	// Seeding must have persisted: a second load reads the file back.
	again, err := s.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if len(again) != 5 {
		t.Fatalf("reloaded seed len = %d, want 5", len(again))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := testFileStore(t)

	written := []model.WasteRecord{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), RecyclingKg: 12.5, CompostKg: 0, LandfillKg: 3.25},
		{Date: time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local), RecyclingKg: 0.1, CompostKg: 7.75, LandfillKg: 20},
	}
	if err := s.Replace(written); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(written) {
		t.Fatalf("loaded %d records, want %d", len(loaded), len(written))
	}
	for i := range written {
		if got, want := loaded[i].Date.Format("2006-01-02"), written[i].Date.Format("2006-01-02"); got != want {
			t.Errorf("record %d date = %s, want %s", i, got, want)
		}
		if !sameQuantities(loaded[i], written[i]) {
			t.Errorf("record %d = %+v, want %+v", i, loaded[i], written[i])
		}
	}
}

func TestFileStoreAppend(t *testing.T) {
	s := testFileStore(t)

	before, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	after, err := s.Append(5, 2, 3)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("after append len = %d, want %d", len(after), len(before)+1)
	}

	last := after[len(after)-1]
	if got, want := last.Date.Format("2006-01-02"), "2025-03-15"; got != want {
		t.Errorf("appended date = %s, want %s", got, want)
	}
	if last.RecyclingKg != 5 || last.CompostKg != 2 || last.LandfillKg != 3 {
		t.Errorf("appended record = %+v, want (5, 2, 3)", last)
	}

	// The append must be durable, not just in the returned slice.
	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded) != len(after) {
		t.Errorf("reloaded len = %d, want %d", len(reloaded), len(after))
	}
}

func TestFileStoreAppendRejectsNegative(t *testing.T) {
	s := testFileStore(t)
	if _, err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := s.Append(-1, 2, 3)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("Append(-1,2,3) err = %v, want ErrNegativeQuantity", err)
	}

	// Rejected append must leave the dataset untouched.
	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("records after rejected append = %d, want 5", len(records))
	}
}

func TestFileStoreMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "When,What,Where,Why\n2025-01-01,1,2,3\n"},
		{"missing column", "Date,Recycling,Compost\n2025-01-01,1,2\n"},
		{"non-numeric cell", "Date,Recycling,Compost,Landfill\n2025-01-01,abc,2,3\n"},
		{"bad date", "Date,Recycling,Compost,Landfill\nyesterday,1,2,3\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "waste_data.csv")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := NewFileStore(path).Load()
			var readErr *ReadError
			if !errors.As(err, &readErr) {
				t.Fatalf("Load err = %v, want *ReadError", err)
			}
		})
	}
}

func TestFileStoreReplaceLeavesNoTempFile(t *testing.T) {
	s := testFileStore(t)
	if err := s.Replace(seedRecords(s.now())); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := os.Stat(s.path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present after Replace (stat err = %v)", err)
	}
}

func TestMemStoreMatchesContract(t *testing.T) {
	s := NewMemStore()
	s.now = func() time.Time { return time.Date(2025, 3, 15, 9, 30, 0, 0, time.Local) }

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("seed len = %d, want 5", len(records))
	}

	after, err := s.Append(1, 2, 3)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(after) != 6 {
		t.Fatalf("after append len = %d, want 6", len(after))
	}

	if _, err := s.Append(0, -0.5, 0); !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("negative append err = %v, want ErrNegativeQuantity", err)
	}

	// Mutating the returned slice must not affect the store.
	after[0].RecyclingKg = 9999
	reloaded, _ := s.Load()
	if reloaded[0].RecyclingKg == 9999 {
		t.Error("store state shared with caller slice")
	}
}
