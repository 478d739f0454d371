package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edforge/qconvert/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		runs, err := st.Runs().Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %6s  %6s  %6s  %5s  %s\n",
			"Started", "Run", "Total", "OK", "Failed", "Warn", "Input")
		fmt.Println(strings.Repeat("-", 80))
		for _, r := range runs {
			failed := r.PreValidationFailed + r.ConversionFailed + r.PostValidationFailed
			fmt.Printf("%-19s  %-8s  %6d  %6d  %6d  %5d  %s\n",
				r.StartedAt.Format("2006-01-02 15:04:05"),
				r.ID.String()[:8],
				r.Total, r.Converted, failed, r.Warnings, r.InputPath)
		}
		fmt.Printf("\n%d runs\n", len(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to show")
}
