package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/langmeta/internal/domain/catalog"
	"github.com/corey/langmeta/lang"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <language>",
	Short: "Show metadata for one language",
	Long:  "Accepts a language name (any case) or an ISO 639-1/639-3 code.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

// resolveLanguage accepts a language name or, failing that, an ISO code of
// matching length. The name parse error is the one surfaced when nothing
// matches.
func resolveLanguage(input string) (lang.Language, error) {
	l, nameErr := lang.ParseLanguage(input)
	if nameErr == nil {
		return l, nil
	}
	switch len(input) {
	case 2:
		if code, err := lang.ParseIsoCode639_1(input); err == nil {
			return lang.LanguageForCode639_1(code), nil
		}
	case 3:
		if code, err := lang.ParseIsoCode639_3(input); err == nil {
			return lang.LanguageForCode639_3(code), nil
		}
	}
	return 0, nameErr
}

func runShow(cmd *cobra.Command, args []string) error {
	l, err := resolveLanguage(args[0])
	if err != nil {
		return err
	}

	if showJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.RecordFor(l))
	}

	fmt.Printf("Language:   %s\n", l)
	fmt.Printf("ISO 639-1:  %s\n", l.IsoCode639_1())
	fmt.Printf("ISO 639-3:  %s\n", l.IsoCode639_3())
	fmt.Printf("Scripts:    %s\n", joinAlphabets(l.Alphabets()))
	fmt.Printf("BCP 47:     %s\n", l.Tag())
	if uc := l.UniqueCharacters(); uc != "" {
		fmt.Printf("Unique:     %s\n", uc)
	}
	return nil
}
