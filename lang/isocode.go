package lang

import (
	"errors"
	"fmt"
	"strings"
)

// IsoCode639_1 is a standardized two-letter language identifier.
// Exactly one catalogued language maps to each value.
type IsoCode639_1 int

const (
	AF IsoCode639_1 = iota
	AR
	AZ
	BE
	BG
	BN
	BS
	CA
	CS
	CY
	DA
	DE
	EL
	EN
	EO
	ES
	ET
	EU
	FA
	FI
	FR
	GA
	GU
	HE
	HI
	HR
	HU
	HY
	ID
	IS
	IT
	JA
	KA
	KK
	KO
	LA
	LT
	LV
	MK
	MN
	MR
	MS
	NL
	NO
	PA
	PL
	PT
	RO
	RU
	SK
	SL
	SO
	SQ
	SR
	SV
	SW
	TA
	TE
	TH
	TL
	TR
	UK
	UR
	VI
	YO
	ZH
	ZU

	isoCode639_1Count // sentinel, keep last
)

// IsoCode639_3 is a standardized three-letter language identifier.
// Exactly one catalogued language maps to each value.
type IsoCode639_3 int

const (
	AFR IsoCode639_3 = iota
	ARA
	AZE
	BEL
	BEN
	BOS
	BUL
	CAT
	CES
	CYM
	DAN
	DEU
	ELL
	ENG
	EPO
	EST
	EUS
	FAS
	FIN
	FRA
	GLE
	GUJ
	HEB
	HIN
	HRV
	HUN
	HYE
	IND
	ISL
	ITA
	JPN
	KAT
	KAZ
	KOR
	LAT
	LAV
	LIT
	MAR
	MKD
	MON
	MSA
	NLD
	NOR
	PAN
	POL
	POR
	RON
	RUS
	SLK
	SLV
	SOM
	SPA
	SQI
	SRP
	SWA
	SWE
	TAM
	TEL
	TGL
	THA
	TUR
	UKR
	URD
	VIE
	YOR
	ZHO
	ZUL

	isoCode639_3Count // sentinel, keep last
)

// ErrUnrecognizedIsoCode is returned by the ISO code parse functions for
// inputs outside the catalogue.
var ErrUnrecognizedIsoCode = errors.New("unrecognized ISO 639 code")

var isoCode639_1Names = [isoCode639_1Count]string{
	"af", "ar", "az", "be", "bg", "bn", "bs", "ca", "cs", "cy",
	"da", "de", "el", "en", "eo", "es", "et", "eu", "fa", "fi",
	"fr", "ga", "gu", "he", "hi", "hr", "hu", "hy", "id", "is",
	"it", "ja", "ka", "kk", "ko", "la", "lt", "lv", "mk", "mn",
	"mr", "ms", "nl", "no", "pa", "pl", "pt", "ro", "ru", "sk",
	"sl", "so", "sq", "sr", "sv", "sw", "ta", "te", "th", "tl",
	"tr", "uk", "ur", "vi", "yo", "zh", "zu",
}

var isoCode639_3Names = [isoCode639_3Count]string{
	"afr", "ara", "aze", "bel", "ben", "bos", "bul", "cat", "ces", "cym",
	"dan", "deu", "ell", "eng", "epo", "est", "eus", "fas", "fin", "fra",
	"gle", "guj", "heb", "hin", "hrv", "hun", "hye", "ind", "isl", "ita",
	"jpn", "kat", "kaz", "kor", "lat", "lav", "lit", "mar", "mkd", "mon",
	"msa", "nld", "nor", "pan", "pol", "por", "ron", "rus", "slk", "slv",
	"som", "spa", "sqi", "srp", "swa", "swe", "tam", "tel", "tgl", "tha",
	"tur", "ukr", "urd", "vie", "yor", "zho", "zul",
}

// String returns the lowercase two-letter code, e.g. "en".
func (c IsoCode639_1) String() string {
	if c < 0 || c >= isoCode639_1Count {
		return fmt.Sprintf("IsoCode639_1(%d)", int(c))
	}
	return isoCode639_1Names[c]
}

// String returns the lowercase three-letter code, e.g. "eng".
func (c IsoCode639_3) String() string {
	if c < 0 || c >= isoCode639_3Count {
		return fmt.Sprintf("IsoCode639_3(%d)", int(c))
	}
	return isoCode639_3Names[c]
}

// ParseIsoCode639_1 resolves a case-insensitive two-letter code.
func ParseIsoCode639_1(code string) (IsoCode639_1, error) {
	want := strings.ToLower(strings.TrimSpace(code))
	for i, name := range isoCode639_1Names {
		if name == want {
			return IsoCode639_1(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedIsoCode, code)
}

// ParseIsoCode639_3 resolves a case-insensitive three-letter code.
func ParseIsoCode639_3(code string) (IsoCode639_3, error) {
	want := strings.ToLower(strings.TrimSpace(code))
	for i, name := range isoCode639_3Names {
		if name == want {
			return IsoCode639_3(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedIsoCode, code)
}
