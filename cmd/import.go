package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/gvx/internal/convert"
)

var (
	importName        string
	importDescription string
	importTag         string
	importDefault     bool
	importOutput      string
)

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "profile name (defaults to the output file name)")
	importCmd.Flags().StringVar(&importDescription, "description", "", "profile description")
	importCmd.Flags().StringVar(&importTag, "tag", "", "profile tag")
	importCmd.Flags().BoolVar(&importDefault, "default", false, "mark the profile as a default profile")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "output path (defaults to <profiles-dir>/<name>.<ext>)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Convert a flat JSON config into a profile document",
	Long: `Reads a JSON object of name/value pairs and writes an equivalent
profile document, rendering each value as a literal expression. Useful for
migrating existing runner configs into profiles.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	if importName == "" {
		return fmt.Errorf("--name is required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input %s: %w", args[0], err)
	}

	doc, err := convert.FromJSON(data, convert.Options{
		Name:        importName,
		Description: importDescription,
		Tag:         importTag,
		Default:     importDefault,
	})
	if err != nil {
		return err
	}

	out := importOutput
	if out == "" {
		s, rootDir, err := loadSettings()
		if err != nil {
			return err
		}
		out = buildRepository(s, rootDir).Path(importName)
	}

	serialized, err := doc.Serialize()
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, serialized, 0o644); err != nil {
		return fmt.Errorf("writing profile document %s: %w", out, err)
	}

	log.Debug().Str("output", out).Int("entries", len(doc.Entries)).Msg("profile imported")
	fmt.Printf("Wrote %d entries to %s.\n", len(doc.Entries), out)

	return nil
}
