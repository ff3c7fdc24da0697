package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <profile>",
	Short: "Show a profile document's entries without loading them",
	Long: `Resolves and parses a single profile document and prints its
declared entries with their unevaluated literal expressions. Nothing is
written to the registry.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, rootDir, err := loadSettings()
	if err != nil {
		return err
	}

	repo := buildRepository(s, rootDir)

	doc, err := repo.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Profile:     %s\n", args[0])
	if doc.Description != "" {
		fmt.Printf("Description: %s\n", doc.Description)
	}
	if doc.Tag != "" {
		fmt.Printf("Tag:         %s\n", doc.Tag)
	}
	fmt.Printf("Default:     %t\n", doc.Default)
	fmt.Println()

	fmt.Printf("Entries (%d):\n", len(doc.Entries))
	for _, entry := range doc.Entries {
		fmt.Printf("  %-35s = %s\n", entry.Name, entry.InitValue)
		if entry.Description != "" {
			fmt.Printf("  %-35s   %s\n", "", entry.Description)
		}
	}

	return nil
}
