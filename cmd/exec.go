package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	gvxexec "go.dot.industries/gvx/internal/exec"
)

var (
	execProfiles []string
	execSetFlags []string
)

func init() {
	execCmd.Flags().StringArrayVarP(&execProfiles, "profile", "p", nil, "profile to load before running (repeatable, applied in order)")
	execCmd.Flags().StringArrayVar(&execSetFlags, "set", nil, "extra name=literal pair applied after profiles (repeatable)")
	rootCmd.AddCommand(execCmd)
}

var execCmd = &cobra.Command{
	Use:   "exec -- <command> [args...]",
	Short: "Run a command with global variables injected as environment variables",
	Long: `Loads the requested profiles, then executes the given command with
the merged namespace injected as environment variables. String values are
passed verbatim; lists, mappings, numbers, booleans, and null become
compact JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	l, reg, err := buildLoader()
	if err != nil {
		return err
	}

	count, err := applyProfilesAndSets(l, execProfiles, execSetFlags)
	if err != nil {
		return err
	}

	snapshot := reg.Snapshot()

	log.Info().
		Int("entries", count).
		Int("variables", len(snapshot)).
		Msg("injecting environment")

	ctx := context.Background()
	if err := gvxexec.Run(ctx, args, snapshot); err != nil {
		os.Exit(gvxexec.ExitCode(err))
	}

	return nil
}
