package lang

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet classifies the writing system a language is written in. The
// catalogue only references these values; codepoint-range membership is the
// concern of the consuming detection pipeline, not of this package.
type Alphabet int

const (
	AlphabetArabic Alphabet = iota
	AlphabetArmenian
	AlphabetBengali
	AlphabetCyrillic
	AlphabetDevanagari
	AlphabetGeorgian
	AlphabetGreek
	AlphabetGujarati
	AlphabetGurmukhi
	AlphabetHan
	AlphabetHangul
	AlphabetHebrew
	AlphabetHiragana
	AlphabetKatakana
	AlphabetLatin
	AlphabetTamil
	AlphabetTelugu
	AlphabetThai

	alphabetCount // sentinel, keep last
)

// ErrUnrecognizedAlphabet is returned by ParseAlphabet for unknown names.
var ErrUnrecognizedAlphabet = errors.New("unrecognized alphabet")

var alphabetNames = [alphabetCount]string{
	"Arabic", "Armenian", "Bengali", "Cyrillic", "Devanagari", "Georgian",
	"Greek", "Gujarati", "Gurmukhi", "Han", "Hangul", "Hebrew",
	"Hiragana", "Katakana", "Latin", "Tamil", "Telugu", "Thai",
}

// AllAlphabets returns every writing system referenced by the catalogue,
// in declaration order. The returned slice is a fresh copy on each call.
func AllAlphabets() []Alphabet {
	all := make([]Alphabet, alphabetCount)
	for i := range all {
		all[i] = Alphabet(i)
	}
	return all
}

// String returns the script name, e.g. "Latin".
func (a Alphabet) String() string {
	if a < 0 || a >= alphabetCount {
		return fmt.Sprintf("Alphabet(%d)", int(a))
	}
	return alphabetNames[a]
}

// ParseAlphabet resolves a case-insensitive script name.
func ParseAlphabet(name string) (Alphabet, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range alphabetNames {
		if strings.ToUpper(n) == want {
			return Alphabet(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedAlphabet, name)
}
