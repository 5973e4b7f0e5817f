package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SureshAIOrigin/automatic-eureka/internal/config"
	"github.com/SureshAIOrigin/automatic-eureka/internal/logreport"
)

var (
	flagLogPattern string
	flagLogTop     int
	flagLogUser    string
)

var logsCmd = &cobra.Command{
	Use:   "logs <logfile>",
	Short: "Analyze an application log file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&flagLogPattern, "pattern", "", "Log line pattern with timestamp/level/message capture groups")
	logsCmd.Flags().IntVar(&flagLogTop, "top", 10, "Number of top error types to show")
	logsCmd.Flags().StringVar(&flagLogUser, "user", "", "Show error entries for this user only")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	pattern := flagLogPattern
	if pattern == "" {
		if cfg, err := config.Load(args[0]); err == nil && cfg.LogPattern != "" {
			pattern = cfg.LogPattern
		}
	}
	if pattern == "" {
		pattern = logreport.DefaultPattern
	}

	analyzer, err := logreport.NewWithPattern(pattern)
	if err != nil {
		return err
	}
	if err := analyzer.ReadFile(args[0]); err != nil {
		return err
	}

	if flagLogUser != "" {
		entries := analyzer.ErrorsForUser(flagLogUser)
		if len(entries) == 0 {
			fmt.Printf("No errors for user %s\n", flagLogUser)
			return nil
		}
		for _, e := range entries {
			fmt.Printf("[%s] %s: %s\n", e.Timestamp, e.Level, e.Message)
		}
		return nil
	}

	if flagFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Stats logreport.Stats       `json:"stats"`
			Top   []logreport.TypeCount `json:"top_error_types"`
		}{analyzer.Stats(), analyzer.TopErrorTypes(flagLogTop)})
	}

	fmt.Print(analyzer.Report())
	return nil
}
