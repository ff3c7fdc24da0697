package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/gvx/internal/config"
	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/profile"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate gvx.toml and every profile document",
	Long: `Checks gvx.toml for structural validity, evaluates the static
schema's initial values, and parses every profile document in the profiles
directory. Reports errors for malformed documents and unevaluable
literals.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, rootDir, err := loadSettings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	if err := config.ValidateWithRoot(s, rootDir); err != nil {
		return fmt.Errorf("gvx.toml: %w", err)
	}

	if _, err := config.StaticSchema(s); err != nil {
		return fmt.Errorf("gvx.toml static schema: %w", err)
	}

	log.Debug().Str("root", rootDir).Msg("settings valid")
	fmt.Println("gvx.toml: valid")

	profilesDir := config.ProfilesDir(s, rootDir)
	repo := buildRepository(s, rootDir)

	names, err := profileNames(profilesDir, s.Profiles.Extension)
	if err != nil {
		return err
	}

	errors := 0
	for _, name := range names {
		if err := checkProfile(repo, name); err != nil {
			fmt.Printf("%s: ERROR - %s\n", name, err)
			errors++
			continue
		}

		fmt.Printf("%s: valid\n", name)
	}

	if errors > 0 {
		return fmt.Errorf("%d profile document(s) have errors", errors)
	}

	fmt.Printf("\nAll %d profile document(s) are valid.\n", len(names))

	return nil
}

// profileNames lists the profile names present in the profiles directory,
// based on the configured extension.
func profileNames(dir string, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading profiles directory %s: %w", dir, err)
	}

	suffix := "." + ext

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), suffix))
	}

	return names, nil
}

// checkProfile parses one document and evaluates every literal in it
// without touching any registry.
func checkProfile(repo *profile.Repository, name string) error {
	doc, err := repo.Resolve(name)
	if err != nil {
		return err
	}

	for _, entry := range doc.Entries {
		if _, err := literal.Eval(entry.InitValue); err != nil {
			return fmt.Errorf("entry %q: %w", entry.Name, err)
		}
	}

	return nil
}
