// Package catalog assembles the language registry into snapshot records for
// export. The registry stays authoritative; a snapshot is a derived,
// read-only artifact the external detection pipeline can load without
// linking against the enum package.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/corey/langmeta/internal/ports"
	"github.com/corey/langmeta/lang"
)

// Build produces a snapshot of the full catalogue, one record per language
// in declaration order.
func Build() *ports.Snapshot {
	all := lang.AllLanguages()
	snap := &ports.Snapshot{
		Version:   ports.SnapshotVersion,
		Count:     len(all),
		Languages: make([]ports.Record, 0, len(all)),
	}
	for _, l := range all {
		snap.Languages = append(snap.Languages, RecordFor(l))
	}
	return snap
}

// RecordFor converts one language to its interchange form.
func RecordFor(l lang.Language) ports.Record {
	alphabets := l.Alphabets()
	names := make([]string, len(alphabets))
	for i, a := range alphabets {
		names[i] = a.String()
	}
	return ports.Record{
		Name:             strings.ToUpper(l.String()),
		IsoCode639_1:     l.IsoCode639_1().String(),
		IsoCode639_3:     l.IsoCode639_3().String(),
		Alphabets:        names,
		UniqueCharacters: l.UniqueCharacters(),
	}
}

// WriteJSON writes the snapshot as indented JSON to a file.
func WriteJSON(path string, snap *ports.Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
