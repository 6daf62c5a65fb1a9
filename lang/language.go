// Package lang is a closed catalogue of natural languages with their
// standardized identifiers and writing-system metadata.
//
// The catalogue is fixed at build time. Every lookup is a total function over
// the Language domain: it cannot fail and never allocates shared mutable
// state, so the package is safe for unlimited concurrent use without locks.
// The only fallible operation is ParseLanguage, the textual deserialization
// boundary.
package lang

import (
	"errors"
	"fmt"
	"strings"
)

// Language identifies one natural language in the catalogue.
// The set of values is closed; arithmetic on Language values is meaningless.
type Language int

// Supported languages, in stable declaration order.
const (
	Afrikaans Language = iota
	Albanian
	Arabic
	Armenian
	Azerbaijani
	Basque
	Belarusian
	Bengali
	Bosnian
	Bulgarian
	Catalan
	Chinese
	Croatian
	Czech
	Danish
	Dutch
	English
	Esperanto
	Estonian
	Finnish
	French
	Georgian
	German
	Greek
	Gujarati
	Hebrew
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Irish
	Italian
	Japanese
	Kazakh
	Korean
	Latin
	Latvian
	Lithuanian
	Macedonian
	Malay
	Marathi
	Mongolian
	Norwegian
	Persian
	Polish
	Portuguese
	Punjabi
	Romanian
	Russian
	Serbian
	Slovak
	Slovene
	Somali
	Spanish
	Swahili
	Swedish
	Tagalog
	Tamil
	Telugu
	Thai
	Turkish
	Ukrainian
	Urdu
	Vietnamese
	Welsh
	Yoruba
	Zulu

	languageCount // sentinel, keep last
)

// ErrUnrecognizedLanguage is returned by ParseLanguage when the input does not
// name any catalogued language.
var ErrUnrecognizedLanguage = errors.New("unrecognized language")

// languageNames is indexed by Language. A missing entry would surface as an
// empty name, which the completeness test rejects.
var languageNames = [languageCount]string{
	Afrikaans:   "Afrikaans",
	Albanian:    "Albanian",
	Arabic:      "Arabic",
	Armenian:    "Armenian",
	Azerbaijani: "Azerbaijani",
	Basque:      "Basque",
	Belarusian:  "Belarusian",
	Bengali:     "Bengali",
	Bosnian:     "Bosnian",
	Bulgarian:   "Bulgarian",
	Catalan:     "Catalan",
	Chinese:     "Chinese",
	Croatian:    "Croatian",
	Czech:       "Czech",
	Danish:      "Danish",
	Dutch:       "Dutch",
	English:     "English",
	Esperanto:   "Esperanto",
	Estonian:    "Estonian",
	Finnish:     "Finnish",
	French:      "French",
	Georgian:    "Georgian",
	German:      "German",
	Greek:       "Greek",
	Gujarati:    "Gujarati",
	Hebrew:      "Hebrew",
	Hindi:       "Hindi",
	Hungarian:   "Hungarian",
	Icelandic:   "Icelandic",
	Indonesian:  "Indonesian",
	Irish:       "Irish",
	Italian:     "Italian",
	Japanese:    "Japanese",
	Kazakh:      "Kazakh",
	Korean:      "Korean",
	Latin:       "Latin",
	Latvian:     "Latvian",
	Lithuanian:  "Lithuanian",
	Macedonian:  "Macedonian",
	Malay:       "Malay",
	Marathi:     "Marathi",
	Mongolian:   "Mongolian",
	Norwegian:   "Norwegian",
	Persian:     "Persian",
	Polish:      "Polish",
	Portuguese:  "Portuguese",
	Punjabi:     "Punjabi",
	Romanian:    "Romanian",
	Russian:     "Russian",
	Serbian:     "Serbian",
	Slovak:      "Slovak",
	Slovene:     "Slovene",
	Somali:      "Somali",
	Spanish:     "Spanish",
	Swahili:     "Swahili",
	Swedish:     "Swedish",
	Tagalog:     "Tagalog",
	Tamil:       "Tamil",
	Telugu:      "Telugu",
	Thai:        "Thai",
	Turkish:     "Turkish",
	Ukrainian:   "Ukrainian",
	Urdu:        "Urdu",
	Vietnamese:  "Vietnamese",
	Welsh:       "Welsh",
	Yoruba:      "Yoruba",
	Zulu:        "Zulu",
}

// languagesByName maps the canonical uppercase name to its tag.
// Built once before main; read-only afterwards.
var languagesByName = func() map[string]Language {
	m := make(map[string]Language, languageCount)
	for _, l := range AllLanguages() {
		m[strings.ToUpper(l.String())] = l
	}
	return m
}()

// AllLanguages returns every supported language in declaration order.
// The returned slice is a fresh copy on each call.
func AllLanguages() []Language {
	all := make([]Language, languageCount)
	for i := range all {
		all[i] = Language(i)
	}
	return all
}

// ParseLanguage resolves a case-insensitive language name ("English",
// "ENGLISH", "english") to its tag. It is the only operation in this package
// that can fail; unknown names return ErrUnrecognizedLanguage.
func ParseLanguage(name string) (Language, error) {
	if l, ok := languagesByName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedLanguage, name)
}

// String returns the canonical language name, e.g. "English".
func (l Language) String() string {
	if l < 0 || l >= languageCount {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageNames[l]
}

// MarshalText renders the language as its uppercase name, the interchange
// form used in configuration files and snapshot artifacts.
func (l Language) MarshalText() ([]byte, error) {
	if l < 0 || l >= languageCount {
		return nil, fmt.Errorf("%w: tag %d", ErrUnrecognizedLanguage, int(l))
	}
	return []byte(strings.ToUpper(languageNames[l])), nil
}

// UnmarshalText parses the uppercase-token form accepted by ParseLanguage.
func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
