package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	exportPretty   bool
	exportSetFlags []string
)

func init() {
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "indent the JSON output")
	exportCmd.Flags().StringArrayVar(&exportSetFlags, "set", nil, "extra name=literal pair applied after profiles (repeatable)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [profile...]",
	Short: "Print the merged global variables as JSON",
	Long: `Loads the named profiles in order and prints the resulting
namespace as a JSON object with lexicographically sorted keys. With no
profiles, only the static schema is exported.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	l, reg, err := buildLoader()
	if err != nil {
		return err
	}

	count, err := applyProfilesAndSets(l, args, exportSetFlags)
	if err != nil {
		return err
	}

	log.Debug().Int("entries", count).Msg("export ready")

	out, err := reg.ExportJSON(exportPretty)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
