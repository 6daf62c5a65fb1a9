package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/langmeta/internal/domain/catalog"
	"github.com/corey/langmeta/lang"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported languages",
	Long:  "Prints every catalogued language with its ISO 639-1 and 639-3 codes and writing systems.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.Build())
	}

	fmt.Printf("%-13s %-6s %-6s %s\n", "LANGUAGE", "639-1", "639-3", "SCRIPTS")
	for _, l := range lang.AllLanguages() {
		fmt.Printf("%-13s %-6s %-6s %s\n",
			l, l.IsoCode639_1(), l.IsoCode639_3(), joinAlphabets(l.Alphabets()))
	}
	return nil
}

func joinAlphabets(alphabets []lang.Alphabet) string {
	names := make([]string, len(alphabets))
	for i, a := range alphabets {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
