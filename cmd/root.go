package cmd

import (
	"github.com/edforge/qconvert/internal/rules"
	"github.com/edforge/qconvert/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qconvert",
	Short: "Convert legacy question JSON to the target schema",
	Long: "Qconvert migrates legacy question documents to the target schema: " +
		"pre-validation, declarative per-type transformation, post-validation, " +
		"with per-document failure isolation.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QCONVERT_DB env var)")
	rootCmd.PersistentFlags().String("rules", "", "Directory of rule overrides (falls back to the embedded rules)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QCONVERT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// ruleRegistry builds the rule registry honoring the --rules override.
func ruleRegistry(cmd *cobra.Command) *rules.Registry {
	if dir, _ := cmd.Flags().GetString("rules"); dir != "" {
		return rules.NewRegistryFromDir(dir)
	}
	return rules.NewRegistry()
}
