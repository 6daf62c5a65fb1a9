package lang

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllLanguages_Closure(t *testing.T) {
	all := AllLanguages()
	assert.Len(t, all, 67)

	seen := make(map[Language]bool, len(all))
	for _, l := range all {
		assert.False(t, seen[l], "duplicate language %s", l)
		seen[l] = true
	}

	// Stable order across calls.
	assert.Equal(t, all, AllLanguages())
}

func TestAllLanguages_ReturnsCopy(t *testing.T) {
	all := AllLanguages()
	all[0] = Zulu
	assert.Equal(t, Afrikaans, AllLanguages()[0])
}

func TestLanguage_String(t *testing.T) {
	assert.Equal(t, "English", English.String())
	assert.Equal(t, "Afrikaans", Afrikaans.String())
	assert.Equal(t, "Zulu", Zulu.String())
}

func TestLanguage_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "Language(-1)", Language(-1).String())
	assert.Equal(t, "Language(999)", Language(999).String())
}

func TestParseLanguage_RoundTrip(t *testing.T) {
	for _, l := range AllLanguages() {
		parsed, err := ParseLanguage(strings.ToUpper(l.String()))
		require.NoError(t, err, "parse %s", l)
		assert.Equal(t, l, parsed)
	}
}

func TestParseLanguage_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"english", "English", "ENGLISH", "  english  "} {
		parsed, err := ParseLanguage(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, English, parsed)
	}
}

func TestParseLanguage_Unrecognized(t *testing.T) {
	_, err := ParseLanguage("Klingon")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedLanguage)
	assert.Contains(t, err.Error(), "Klingon")

	_, err = ParseLanguage("")
	assert.ErrorIs(t, err, ErrUnrecognizedLanguage)
}

func TestLanguage_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Detected Language `json:"detected"`
	}

	b, err := json.Marshal(payload{Detected: German})
	require.NoError(t, err)
	assert.JSONEq(t, `{"detected":"GERMAN"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"detected":"JAPANESE"}`), &p))
	assert.Equal(t, Japanese, p.Detected)
}

func TestLanguage_UnmarshalText_Unrecognized(t *testing.T) {
	var l Language
	err := l.UnmarshalText([]byte("XYZZY"))
	assert.ErrorIs(t, err, ErrUnrecognizedLanguage)
}

func TestLanguage_MarshalText_InvalidTag(t *testing.T) {
	_, err := Language(999).MarshalText()
	assert.Error(t, err)
}
