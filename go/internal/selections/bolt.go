package selections

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

const (
	boltBucketState = "state"      // key: "selections" -> Record JSON
	boltKeyRecord   = "selections"
)

// BoltPersister stores the selection record in a single-file bbolt database.
type BoltPersister struct {
	storage *bbolt.DB
}

// NewBoltPersister opens (or creates) the database at path.
func NewBoltPersister(path string) (*BoltPersister, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketState))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &BoltPersister{storage: instance}, nil
}

// Close closes the database.
func (b *BoltPersister) Close() error {
	return b.storage.Close()
}

// Load reads the stored record, reporting whether one existed.
func (b *BoltPersister) Load() (Record, bool, error) {
	var (
		rec   Record
		found bool
	)

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketState))

		v := bucket.Get([]byte(boltKeyRecord))
		if v == nil {
			return nil
		}

		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}

		found = true

		return nil
	})

	return rec, found, err
}

// Save writes the record, replacing any prior state.
func (b *BoltPersister) Save(rec Record) error {
	data, err := json.Marshal(&rec)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketState))

		return bucket.Put([]byte(boltKeyRecord), data)
	})
}
