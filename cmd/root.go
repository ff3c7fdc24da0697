package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"go.dot.industries/gvx/internal/config"
	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/loader"
	"go.dot.industries/gvx/internal/profile"
	"go.dot.industries/gvx/internal/registry"
)

var (
	flagSettings string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "gvx",
	Short: "Global variable profiles for test execution",
	Long: `gvx assembles a test run's global variables from named profile
documents, merges them into one namespace with last-applied-wins override,
and exports the result as JSON or as environment variables injected into a
child process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "path to gvx.toml (auto-detected if omitted)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// loadSettings finds and parses gvx.toml and returns the settings and the
// directory they were found in.
func loadSettings() (*config.Settings, string, error) {
	settingsPath := flagSettings

	if settingsPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("getting working directory: %w", err)
		}

		found, err := config.FindSettings(cwd)
		if err != nil {
			return nil, "", err
		}
		settingsPath = found
	}

	s, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, "", err
	}

	if err := config.Validate(s); err != nil {
		return nil, "", fmt.Errorf("%s: %w", settingsPath, err)
	}

	rootDir := filepath.Dir(settingsPath)

	return s, rootDir, nil
}

// buildRepository constructs the profile repository for the current settings.
func buildRepository(s *config.Settings, rootDir string) *profile.Repository {
	dir := config.ProfilesDir(s, rootDir)

	return profile.NewRepository(dir, profile.WithExtension(s.Profiles.Extension))
}

// buildLoader constructs the registry (seeded with the static schema) and
// the profiles loader for the current settings.
func buildLoader() (*loader.Loader, *registry.Registry, error) {
	s, rootDir, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	schema, err := config.StaticSchema(s)
	if err != nil {
		return nil, nil, err
	}

	reg := registry.New(schema)
	repo := buildRepository(s, rootDir)

	log.Debug().
		Str("root", rootDir).
		Int("static", len(schema)).
		Msg("registry initialized")

	return loader.New(repo, reg), reg, nil
}

// parseSetFlags evaluates "name=literal" pairs from --set flags into typed
// values. A repeated name keeps the last occurrence.
func parseSetFlags(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		name, expr, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: expected name=literal", pair)
		}

		v, err := literal.Eval(expr)
		if err != nil {
			return nil, fmt.Errorf("--set %q: %w", name, err)
		}
		values[name] = v
	}

	return values, nil
}

// applyProfilesAndSets loads the named profiles, then any --set pairs on
// top, and returns the total number of entries written.
func applyProfilesAndSets(l *loader.Loader, profiles []string, sets []string) (int, error) {
	total := 0

	if len(profiles) > 0 {
		n, err := l.LoadProfiles(profiles)
		total += n
		if err != nil {
			return total, err
		}
	}

	if len(sets) > 0 {
		pairs, err := parseSetFlags(sets)
		if err != nil {
			return total, err
		}

		n, err := l.LoadEntries(pairs)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
