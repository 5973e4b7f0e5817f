package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SureshAIOrigin/automatic-eureka/internal/scanner"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, spec := range scanner.Catalog() {
			fmt.Printf("%s  %-7s %s\n", spec.RuleID, spec.Severity, spec.Title)
			fmt.Printf("         suggestion: %s\n", spec.Suggestion)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
