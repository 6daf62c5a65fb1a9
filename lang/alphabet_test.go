package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAlphabets_Closure(t *testing.T) {
	all := AllAlphabets()
	assert.Len(t, all, 18)

	seen := make(map[Alphabet]bool, len(all))
	for _, a := range all {
		assert.False(t, seen[a], "duplicate alphabet %s", a)
		seen[a] = true
	}
}

func TestParseAlphabet_RoundTrip(t *testing.T) {
	for _, a := range AllAlphabets() {
		parsed, err := ParseAlphabet(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestParseAlphabet_CaseInsensitive(t *testing.T) {
	parsed, err := ParseAlphabet("cyrillic")
	require.NoError(t, err)
	assert.Equal(t, AlphabetCyrillic, parsed)
}

func TestParseAlphabet_Unrecognized(t *testing.T) {
	_, err := ParseAlphabet("Tengwar")
	assert.ErrorIs(t, err, ErrUnrecognizedAlphabet)
}

func TestAlphabet_EveryCataloguedScriptIsUsed(t *testing.T) {
	used := make(map[Alphabet]bool)
	for _, l := range AllLanguages() {
		for _, a := range l.Alphabets() {
			used[a] = true
		}
	}
	for _, a := range AllAlphabets() {
		assert.True(t, used[a], "alphabet %s referenced by no language", a)
	}
}
