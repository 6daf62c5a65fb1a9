package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/langmeta/internal/domain/catalog"
	"github.com/corey/langmeta/internal/ports"
)

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	snap := catalog.Build()
	require.NoError(t, store.SaveSnapshot(snap))

	got, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, snap.Version, got.Version)
	assert.Equal(t, snap.Count, got.Count)
	assert.Equal(t, snap.Languages, got.Languages)
}

func TestLoadSnapshot_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveSnapshot_Nil(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveSnapshot(nil))
}

func TestLoadRecord(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveSnapshot(catalog.Build()))

	rec, err := store.LoadRecord("GERMAN")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "de", rec.IsoCode639_1)
	assert.Equal(t, "deu", rec.IsoCode639_3)
	assert.Equal(t, []string{"Latin"}, rec.Alphabets)
	assert.Equal(t, "ß", rec.UniqueCharacters)
}

func TestLoadRecord_Miss(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveSnapshot(catalog.Build()))

	rec, err := store.LoadRecord("KLINGON")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveSnapshot_Overwrites(t *testing.T) {
	store, _ := newTestStore(t)

	partial := &ports.Snapshot{
		Version: ports.SnapshotVersion,
		Count:   1,
		Languages: []ports.Record{
			{Name: "STALE", IsoCode639_1: "xx", IsoCode639_3: "xxx", Alphabets: []string{"Latin"}},
		},
	}
	require.NoError(t, store.SaveSnapshot(partial))
	require.NoError(t, store.SaveSnapshot(catalog.Build()))

	stale, err := store.LoadRecord("STALE")
	require.NoError(t, err)
	assert.Nil(t, stale, "prior snapshot entries must not survive a save")

	got, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Len(t, got.Languages, 67)
}

func TestSnapshot_SurvivesReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SaveSnapshot(catalog.Build()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Languages, 67)
	assert.Equal(t, "AFRIKAANS", got.Languages[0].Name)
	assert.Equal(t, "ZULU", got.Languages[66].Name)
}
