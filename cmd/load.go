package cmd

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/gvx/internal/exec"
)

var loadSetFlags []string

func init() {
	loadCmd.Flags().StringArrayVar(&loadSetFlags, "set", nil, "extra name=literal pair applied after profiles (repeatable)")
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <profile> [profile...]",
	Short: "Load profiles and report the merged global variables",
	Long: `Loads the named profiles in order into a fresh registry; a later
profile's value for a name overrides an earlier one's. Prints a summary of
the merged namespace.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	l, reg, err := buildLoader()
	if err != nil {
		return err
	}

	count, err := applyProfilesAndSets(l, args, loadSetFlags)
	if err != nil {
		return err
	}

	log.Debug().
		Int("entries", count).
		Int("dynamic", len(reg.DynamicKeys())).
		Msg("profiles loaded")

	fmt.Printf("Loaded %d entries from %d profile(s).\n\n", count, len(args))

	printVariables(reg.StaticAsMap(), "Static")
	printVariables(reg.DynamicAsMap(), "Dynamic")

	return nil
}

// printVariables prints one tier of the namespace, sorted by name.
func printVariables(vars map[string]any, label string) {
	if len(vars) == 0 {
		return
	}

	fmt.Printf("%s (%d):\n", label, len(vars))

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rendered, err := exec.EnvValue(vars[name])
		if err != nil {
			rendered = fmt.Sprintf("%v", vars[name])
		}
		fmt.Printf("  %-35s = %s\n", name, rendered)
	}
	fmt.Println()
}
