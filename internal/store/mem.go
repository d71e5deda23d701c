package store

import (
	"sync"
	"time"

	"github.com/theirongolddev/ecotrack/internal/model"
)

// MemStore is an in-memory Store for tests and no-persist runs.
type MemStore struct {
	mu      sync.Mutex
	records []model.WasteRecord
	seeded  bool
	now     func() time.Time
}

// NewMemStore creates an empty in-memory store. The first Load seeds it with
// the same starter dataset the file store uses.
func NewMemStore() *MemStore {
	return &MemStore{now: time.Now}
}

// NewMemStoreWith creates an in-memory store pre-populated with records.
func NewMemStoreWith(records []model.WasteRecord) *MemStore {
	s := NewMemStore()
	s.records = append(s.records, records...)
	s.seeded = true
	return s
}

// Load implements Store.
func (s *MemStore) Load() ([]model.WasteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.records = seedRecords(s.now())
		s.seeded = true
	}
	out := make([]model.WasteRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Append implements Store.
func (s *MemStore) Append(recyclingKg, compostKg, landfillKg float64) ([]model.WasteRecord, error) {
	if err := checkQuantities(recyclingKg, compostKg, landfillKg); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		s.records = seedRecords(s.now())
		s.seeded = true
	}
	s.records = append(s.records, model.WasteRecord{
		Date:        s.now(),
		RecyclingKg: recyclingKg,
		CompostKg:   compostKg,
		LandfillKg:  landfillKg,
	})

	out := make([]model.WasteRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Replace implements Store.
func (s *MemStore) Replace(records []model.WasteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]model.WasteRecord, len(records))
	copy(s.records, records)
	s.seeded = true
	return nil
}
