package selections

import "errors"

// MemoryPersister keeps the record in memory only. Useful for tests and for
// running without a database file.
type MemoryPersister struct {
	rec   Record
	found bool

	// FailSaves makes every Save return an error, for exercising the
	// best-effort persistence contract.
	FailSaves bool
}

// ErrSaveFailed is returned by Save when FailSaves is set.
var ErrSaveFailed = errors.New("selections: save failed")

// Load returns the last saved record, if any.
func (m *MemoryPersister) Load() (Record, bool, error) {
	return cloneRecord(m.rec), m.found, nil
}

// Save retains the record in memory.
func (m *MemoryPersister) Save(rec Record) error {
	if m.FailSaves {
		return ErrSaveFailed
	}

	m.rec = cloneRecord(rec)
	m.found = true

	return nil
}
