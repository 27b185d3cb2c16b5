package main

import (
	"fmt"
	"strings"

	"github.com/dmoose/atomicss/pkg/engine"
	"github.com/dmoose/atomicss/pkg/preset"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [query]",
	Short: "Search the default preset's rules, variants, and shortcuts",
	Long: `Search the catalog of every rule, variant, and shortcut the default
preset registers, by name substring and/or kind.

Examples:
  atomicss inspect hover            # anything whose name contains "hover"
  atomicss inspect --kind=shortcut  # every registered shortcut
  atomicss inspect btn --kind=shortcut`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

var inspectKind string

func init() {
	inspectCmd.Flags().StringVarP(&inspectKind, "kind", "k", "", "Filter by kind (rule, variant, shortcut)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	cfg := engine.Resolve(preset.Default(), engine.UserConfig{})
	catalog := engine.BuildCatalog(cfg)
	results := catalog.Search(query, inspectKind)

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, r := range results {
		var tags []string
		if r.Layer != "" {
			tags = append(tags, "layer="+r.Layer)
		}
		if r.Internal {
			tags = append(tags, "internal")
		}
		suffix := ""
		if len(tags) > 0 {
			suffix = " (" + strings.Join(tags, ", ") + ")"
		}
		fmt.Printf("%-10s %s%s\n", r.Kind, r.Name, suffix)
	}
	return nil
}
