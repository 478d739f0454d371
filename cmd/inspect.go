package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edforge/qconvert/internal/pipeline"
	"github.com/edforge/qconvert/internal/question"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Count part types across an input set",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")

		files, err := pipeline.Discover(input, nil)
		if err != nil {
			return fmt.Errorf("discover input files: %w", err)
		}

		counts := map[string]int{}
		unreadable := 0
		for _, path := range files {
			doc, err := question.LoadFile(path)
			if err != nil {
				unreadable++
				continue
			}
			for _, t := range question.DetectPartTypes(doc) {
				counts[t]++
			}
		}

		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool {
			if counts[types[i]] != counts[types[j]] {
				return counts[types[i]] > counts[types[j]]
			}
			return types[i] < types[j]
		})

		fmt.Printf("%-12s  %s\n", "Type", "Parts")
		fmt.Println(strings.Repeat("-", 20))
		for _, t := range types {
			fmt.Printf("%-12s  %d\n", t, counts[t])
		}
		fmt.Printf("\n%d files scanned", len(files))
		if unreadable > 0 {
			fmt.Printf(" (%d unreadable)", unreadable)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringP("input", "i", "INPUT", "Input directory or file path")
}
