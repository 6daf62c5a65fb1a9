package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_SpotChecks(t *testing.T) {
	assert.Equal(t, "en", English.Tag().String())
	assert.Equal(t, "de", German.Tag().String())
	assert.Equal(t, "zh", Chinese.Tag().String())
	assert.Equal(t, "no", Norwegian.Tag().String())
}

func TestTag_NeverUndetermined(t *testing.T) {
	for _, l := range AllLanguages() {
		assert.NotEqual(t, "und", l.Tag().String(), "%s", l)
	}
}
