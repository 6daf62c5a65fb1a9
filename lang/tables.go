package lang

// The four catalogue tables, each indexed by Language. Adding a language
// means adding one tag in language.go plus one entry in each table here;
// the completeness tests enforce full coverage of every table.

// iso639_1Table maps each language to its two-letter identifier.
var iso639_1Table = [languageCount]IsoCode639_1{
	Afrikaans:   AF,
	Albanian:    SQ,
	Arabic:      AR,
	Armenian:    HY,
	Azerbaijani: AZ,
	Basque:      EU,
	Belarusian:  BE,
	Bengali:     BN,
	Bosnian:     BS,
	Bulgarian:   BG,
	Catalan:     CA,
	Chinese:     ZH,
	Croatian:    HR,
	Czech:       CS,
	Danish:      DA,
	Dutch:       NL,
	English:     EN,
	Esperanto:   EO,
	Estonian:    ET,
	Finnish:     FI,
	French:      FR,
	Georgian:    KA,
	German:      DE,
	Greek:       EL,
	Gujarati:    GU,
	Hebrew:      HE,
	Hindi:       HI,
	Hungarian:   HU,
	Icelandic:   IS,
	Indonesian:  ID,
	Irish:       GA,
	Italian:     IT,
	Japanese:    JA,
	Kazakh:      KK,
	Korean:      KO,
	Latin:       LA,
	Latvian:     LV,
	Lithuanian:  LT,
	Macedonian:  MK,
	Malay:       MS,
	Marathi:     MR,
	Mongolian:   MN,
	Norwegian:   NO,
	Persian:     FA,
	Polish:      PL,
	Portuguese:  PT,
	Punjabi:     PA,
	Romanian:    RO,
	Russian:     RU,
	Serbian:     SR,
	Slovak:      SK,
	Slovene:     SL,
	Somali:      SO,
	Spanish:     ES,
	Swahili:     SW,
	Swedish:     SV,
	Tagalog:     TL,
	Tamil:       TA,
	Telugu:      TE,
	Thai:        TH,
	Turkish:     TR,
	Ukrainian:   UK,
	Urdu:        UR,
	Vietnamese:  VI,
	Welsh:       CY,
	Yoruba:      YO,
	Zulu:        ZU,
}

// iso639_3Table maps each language to its three-letter identifier.
var iso639_3Table = [languageCount]IsoCode639_3{
	Afrikaans:   AFR,
	Albanian:    SQI,
	Arabic:      ARA,
	Armenian:    HYE,
	Azerbaijani: AZE,
	Basque:      EUS,
	Belarusian:  BEL,
	Bengali:     BEN,
	Bosnian:     BOS,
	Bulgarian:   BUL,
	Catalan:     CAT,
	Chinese:     ZHO,
	Croatian:    HRV,
	Czech:       CES,
	Danish:      DAN,
	Dutch:       NLD,
	English:     ENG,
	Esperanto:   EPO,
	Estonian:    EST,
	Finnish:     FIN,
	French:      FRA,
	Georgian:    KAT,
	German:      DEU,
	Greek:       ELL,
	Gujarati:    GUJ,
	Hebrew:      HEB,
	Hindi:       HIN,
	Hungarian:   HUN,
	Icelandic:   ISL,
	Indonesian:  IND,
	Irish:       GLE,
	Italian:     ITA,
	Japanese:    JPN,
	Kazakh:      KAZ,
	Korean:      KOR,
	Latin:       LAT,
	Latvian:     LAV,
	Lithuanian:  LIT,
	Macedonian:  MKD,
	Malay:       MSA,
	Marathi:     MAR,
	Mongolian:   MON,
	Norwegian:   NOR,
	Persian:     FAS,
	Polish:      POL,
	Portuguese:  POR,
	Punjabi:     PAN,
	Romanian:    RON,
	Russian:     RUS,
	Serbian:     SRP,
	Slovak:      SLK,
	Slovene:     SLV,
	Somali:      SOM,
	Spanish:     SPA,
	Swahili:     SWA,
	Swedish:     SWE,
	Tagalog:     TGL,
	Tamil:       TAM,
	Telugu:      TEL,
	Thai:        THA,
	Turkish:     TUR,
	Ukrainian:   UKR,
	Urdu:        URD,
	Vietnamese:  VIE,
	Welsh:       CYM,
	Yoruba:      YOR,
	Zulu:        ZUL,
}

// alphabetsTable maps each language to the writing systems it is written in.
// Every entry is non-empty; Japanese is the one multi-script case.
var alphabetsTable = [languageCount][]Alphabet{
	Afrikaans:   {AlphabetLatin},
	Albanian:    {AlphabetLatin},
	Arabic:      {AlphabetArabic},
	Armenian:    {AlphabetArmenian},
	Azerbaijani: {AlphabetLatin},
	Basque:      {AlphabetLatin},
	Belarusian:  {AlphabetCyrillic},
	Bengali:     {AlphabetBengali},
	Bosnian:     {AlphabetLatin},
	Bulgarian:   {AlphabetCyrillic},
	Catalan:     {AlphabetLatin},
	Chinese:     {AlphabetHan},
	Croatian:    {AlphabetLatin},
	Czech:       {AlphabetLatin},
	Danish:      {AlphabetLatin},
	Dutch:       {AlphabetLatin},
	English:     {AlphabetLatin},
	Esperanto:   {AlphabetLatin},
	Estonian:    {AlphabetLatin},
	Finnish:     {AlphabetLatin},
	French:      {AlphabetLatin},
	Georgian:    {AlphabetGeorgian},
	German:      {AlphabetLatin},
	Greek:       {AlphabetGreek},
	Gujarati:    {AlphabetGujarati},
	Hebrew:      {AlphabetHebrew},
	Hindi:       {AlphabetDevanagari},
	Hungarian:   {AlphabetLatin},
	Icelandic:   {AlphabetLatin},
	Indonesian:  {AlphabetLatin},
	Irish:       {AlphabetLatin},
	Italian:     {AlphabetLatin},
	Japanese:    {AlphabetHiragana, AlphabetKatakana, AlphabetHan},
	Kazakh:      {AlphabetCyrillic},
	Korean:      {AlphabetHangul},
	Latin:       {AlphabetLatin},
	Latvian:     {AlphabetLatin},
	Lithuanian:  {AlphabetLatin},
	Macedonian:  {AlphabetCyrillic},
	Malay:       {AlphabetLatin},
	Marathi:     {AlphabetDevanagari},
	Mongolian:   {AlphabetCyrillic},
	Norwegian:   {AlphabetLatin},
	Persian:     {AlphabetArabic},
	Polish:      {AlphabetLatin},
	Portuguese:  {AlphabetLatin},
	Punjabi:     {AlphabetGurmukhi},
	Romanian:    {AlphabetLatin},
	Russian:     {AlphabetCyrillic},
	Serbian:     {AlphabetCyrillic},
	Slovak:      {AlphabetLatin},
	Slovene:     {AlphabetLatin},
	Somali:      {AlphabetLatin},
	Spanish:     {AlphabetLatin},
	Swahili:     {AlphabetLatin},
	Swedish:     {AlphabetLatin},
	Tagalog:     {AlphabetLatin},
	Tamil:       {AlphabetTamil},
	Telugu:      {AlphabetTelugu},
	Thai:        {AlphabetThai},
	Turkish:     {AlphabetLatin},
	Ukrainian:   {AlphabetCyrillic},
	Urdu:        {AlphabetArabic},
	Vietnamese:  {AlphabetLatin},
	Welsh:       {AlphabetLatin},
	Yoruba:      {AlphabetLatin},
	Zulu:        {AlphabetLatin},
}

// uniqueCharactersTable holds letter-forms that occur in one language's
// orthography but are rare or absent among its script-siblings. Languages
// without a documented signal are simply absent and read back as "".
var uniqueCharactersTable = [languageCount]string{
	Albanian:    "Ëë",
	Azerbaijani: "Əə",
	Catalan:     "Ïï",
	Czech:       "ĚěŘřŮů",
	Esperanto:   "ĈĉĜĝĤĥĴĵŜŝŬŭ",
	German:      "ß",
	Hungarian:   "ŐőŰű",
	Kazakh:      "ӘәҒғҚқҢңҰұ",
	Latvian:     "ĢģĶķĻļŅņ",
	Lithuanian:  "ĖėĮįŲų",
	Macedonian:  "ЃѓЅѕЌќЏџ",
	Marathi:     "ळ",
	Mongolian:   "ӨөҮү",
	Polish:      "ŁłŃńŚśŹź",
	Romanian:    "Țţ",
	Serbian:     "ЂђЋћ",
	Slovak:      "ĹĺĽľŔŕ",
	Spanish:     "¿¡",
	Ukrainian:   "ҐґЄєЇї",
	Vietnamese:  "ẰằẦầẲẳẨẩẴẵẪẫẮắẤấẠạẶặẬậỀềẺẻỂểẼẽỄễẾếỆệỈỉĨĩỊịƠơỒồỜờỎỏỔổỞởỖỗỠỡỐốỚớỘộỢợƯưỪừỦủỬửŨũỮữỨứỤụỰựỲỳỶỷỸỹỴỵ",
	Yoruba:      "ŌōṢṣ",
}

// Reverse indexes, derived once from the forward tables. The forward tables
// stay authoritative; the consistency test re-derives these and compares.
var (
	languageByIso1 [isoCode639_1Count]Language
	languageByIso3 [isoCode639_3Count]Language
)

func init() {
	for _, l := range AllLanguages() {
		languageByIso1[iso639_1Table[l]] = l
		languageByIso3[iso639_3Table[l]] = l
	}
}

// IsoCode639_1 returns the language's two-letter identifier.
// Total over the catalogue; no two languages share a code.
func (l Language) IsoCode639_1() IsoCode639_1 {
	return iso639_1Table[l]
}

// IsoCode639_3 returns the language's three-letter identifier.
// Total over the catalogue; no two languages share a code.
func (l Language) IsoCode639_3() IsoCode639_3 {
	return iso639_3Table[l]
}

// Alphabets returns the writing systems the language is written in, never
// empty. The returned slice is a fresh copy on each call.
func (l Language) Alphabets() []Alphabet {
	return append([]Alphabet(nil), alphabetsTable[l]...)
}

// UniqueCharacters returns the language's discriminative letter-forms, or ""
// when no signal is catalogued. An empty result is a valid sentinel, not an
// error.
func (l Language) UniqueCharacters() string {
	return uniqueCharactersTable[l]
}

// LanguageForCode639_1 returns the language a two-letter code identifies.
// Total because the code enumeration covers exactly the catalogued languages.
func LanguageForCode639_1(code IsoCode639_1) Language {
	return languageByIso1[code]
}

// LanguageForCode639_3 returns the language a three-letter code identifies.
func LanguageForCode639_3(code IsoCode639_3) Language {
	return languageByIso3[code]
}
