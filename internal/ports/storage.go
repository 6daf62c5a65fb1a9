// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic depends only on these interfaces, never on concrete
// implementations.
package ports

// SnapshotVersion is the format version written into every snapshot. Bump it
// when the Record shape changes.
const SnapshotVersion = 1

// Record is the interchange form of one catalogue entry. Consumers that read
// snapshot artifacts (JSON or bbolt) deal only in Records and never import
// the enum package.
type Record struct {
	Name             string   `json:"name"`
	IsoCode639_1     string   `json:"iso639_1"`
	IsoCode639_3     string   `json:"iso639_3"`
	Alphabets        []string `json:"alphabets"`
	UniqueCharacters string   `json:"unique_characters,omitempty"`
}

// Snapshot is the full catalogue in interchange form, one Record per
// language in declaration order.
type Snapshot struct {
	Version   int      `json:"version"`
	Count     int      `json:"count"`
	Languages []Record `json:"languages"`
}

// SnapshotStore persists catalogue snapshots to durable storage.
//
// The snapshot is a read-only artifact for the detection pipeline: it is
// written whole and never mutated in place. Saves must be transactional —
// a crash mid-write must not corrupt a previously committed snapshot.
type SnapshotStore interface {
	// SaveSnapshot persists the full catalogue, replacing any prior snapshot.
	SaveSnapshot(snap *Snapshot) error

	// LoadSnapshot retrieves the stored catalogue.
	// Returns nil, nil if no snapshot has been written.
	LoadSnapshot() (*Snapshot, error)

	// LoadRecord retrieves a single entry by its uppercase language name.
	// Returns nil, nil if the name is not in the stored snapshot.
	LoadRecord(name string) (*Record, error)

	// Close releases the underlying storage.
	Close() error
}
