package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/langmeta/lang"
)

func TestResolveLanguage_ByName(t *testing.T) {
	l, err := resolveLanguage("english")
	require.NoError(t, err)
	assert.Equal(t, lang.English, l)
}

func TestResolveLanguage_ByIsoCode(t *testing.T) {
	l, err := resolveLanguage("de")
	require.NoError(t, err)
	assert.Equal(t, lang.German, l)

	l, err = resolveLanguage("deu")
	require.NoError(t, err)
	assert.Equal(t, lang.German, l)
}

func TestResolveLanguage_Unrecognized(t *testing.T) {
	_, err := resolveLanguage("xx")
	assert.ErrorIs(t, err, lang.ErrUnrecognizedLanguage)

	_, err = resolveLanguage("Klingon")
	assert.ErrorIs(t, err, lang.ErrUnrecognizedLanguage)
}
