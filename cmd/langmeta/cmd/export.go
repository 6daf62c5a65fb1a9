package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	bboltstore "github.com/corey/langmeta/internal/adapters/bbolt"
	"github.com/corey/langmeta/internal/domain/catalog"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalogue as a snapshot artifact",
	Long:  "Writes the full catalogue for consumption by the detection pipeline, either as JSON or as an embedded bbolt database.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "languages.json", "Output file path")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Snapshot format: json or bbolt")
}

func runExport(cmd *cobra.Command, args []string) error {
	snap := catalog.Build()

	switch exportFormat {
	case "json":
		if err := catalog.WriteJSON(exportOut, snap); err != nil {
			return err
		}
	case "bbolt":
		store, err := bboltstore.NewStore(exportOut)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveSnapshot(snap); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want json or bbolt)", exportFormat)
	}

	fmt.Printf("wrote %d languages to %s\n", snap.Count, exportOut)
	return nil
}
