package lang

import "golang.org/x/text/language"

// Tag bridges the catalogue to golang.org/x/text for consumers that speak
// BCP 47. The tag is derived from the two-letter code; x/text applies its
// own canonicalization, the catalogue's identifiers are unaffected.
func (l Language) Tag() language.Tag {
	return language.Make(l.IsoCode639_1().String())
}
