// Package bbolt implements the ports.SnapshotStore interface using bbolt
// (embedded B+ tree). Records live in one bucket keyed by uppercase language
// name with JSON values; snapshot metadata lives in a second bucket. Writes
// are transactional — a crash mid-write cannot corrupt a previously
// committed snapshot.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/langmeta/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketLanguages = []byte("languages")
	bucketMeta      = []byte("meta")
	keySnapshot     = []byte("snapshot")
)

// snapshotMeta is the JSON payload stored under the meta bucket.
type snapshotMeta struct {
	Version   int   `json:"version"`
	Count     int   `json:"count"`
	WrittenAt int64 `json:"written_at"`
}

// Store implements ports.SnapshotStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot persists the full catalogue, replacing any prior snapshot.
// The languages bucket is dropped and rebuilt inside one transaction so a
// reader never observes a half-written catalogue.
func (s *Store) SaveSnapshot(snap *ports.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketLanguages) != nil {
			if err := tx.DeleteBucket(bucketLanguages); err != nil {
				return err
			}
		}
		lb, err := tx.CreateBucket(bucketLanguages)
		if err != nil {
			return err
		}
		for i := range snap.Languages {
			rec := &snap.Languages[i]
			b, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("marshal record %s: %w", rec.Name, err)
			}
			if err := lb.Put([]byte(rec.Name), b); err != nil {
				return err
			}
		}

		mb, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		meta, err := json.Marshal(snapshotMeta{
			Version:   snap.Version,
			Count:     len(snap.Languages),
			WrittenAt: time.Now().Unix(),
		})
		if err != nil {
			return fmt.Errorf("marshal meta: %w", err)
		}
		return mb.Put(keySnapshot, meta)
	})
}

// LoadSnapshot retrieves the stored catalogue.
// Returns nil, nil if no snapshot has been written. Records come back in
// key order, which matches declaration order because the catalogue is
// alphabetical by name.
func (s *Store) LoadSnapshot() (*ports.Snapshot, error) {
	var snap *ports.Snapshot

	err := s.db.View(func(tx *bolt.Tx) error {
		mb := tx.Bucket(bucketMeta)
		lb := tx.Bucket(bucketLanguages)
		if mb == nil || lb == nil {
			return nil
		}
		metaJSON := mb.Get(keySnapshot)
		if metaJSON == nil {
			return nil
		}

		var meta snapshotMeta
		if err := json.Unmarshal(metaJSON, &meta); err != nil {
			return fmt.Errorf("unmarshal meta: %w", err)
		}

		snap = &ports.Snapshot{
			Version:   meta.Version,
			Count:     meta.Count,
			Languages: make([]ports.Record, 0, meta.Count),
		}
		return lb.ForEach(func(k, v []byte) error {
			var rec ports.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshal record %s: %w", k, err)
			}
			snap.Languages = append(snap.Languages, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// LoadRecord retrieves a single entry by its uppercase language name.
// Returns nil, nil if the name is not in the stored snapshot.
func (s *Store) LoadRecord(name string) (*ports.Record, error) {
	var rec *ports.Record

	err := s.db.View(func(tx *bolt.Tx) error {
		lb := tx.Bucket(bucketLanguages)
		if lb == nil {
			return nil
		}
		v := lb.Get([]byte(name))
		if v == nil {
			return nil
		}
		rec = &ports.Record{}
		return json.Unmarshal(v, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
