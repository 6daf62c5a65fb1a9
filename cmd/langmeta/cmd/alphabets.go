package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/langmeta/lang"
)

var alphabetsCmd = &cobra.Command{
	Use:   "alphabets [script]",
	Short: "List languages grouped by writing system",
	Long:  "Without an argument, prints every writing system with its languages. With a script name, prints only that group.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAlphabets,
}

func runAlphabets(cmd *cobra.Command, args []string) error {
	groups := make(map[lang.Alphabet][]lang.Language)
	for _, l := range lang.AllLanguages() {
		for _, a := range l.Alphabets() {
			groups[a] = append(groups[a], l)
		}
	}

	scripts := lang.AllAlphabets()
	if len(args) == 1 {
		a, err := lang.ParseAlphabet(args[0])
		if err != nil {
			return err
		}
		scripts = []lang.Alphabet{a}
	}

	for _, a := range scripts {
		names := make([]string, len(groups[a]))
		for i, l := range groups[a] {
			names[i] = l.String()
		}
		fmt.Printf("%-12s (%d): %s\n", a, len(names), strings.Join(names, ", "))
	}
	return nil
}
