package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SureshAIOrigin/automatic-eureka/internal/checkup"
	"github.com/SureshAIOrigin/automatic-eureka/internal/config"
)

var (
	flagCheckDir       string
	flagSQLitePath     string
	flagWebsiteTimeout time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run health checks",
}

var checkGitCmd = &cobra.Command{
	Use:   "git",
	Short: "Check the git installation and local repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("Git Checker", checkup.GitChecks(flagCheckDir))
	},
}

var checkDatabaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check database clients, config, and an optional SQLite file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("Database Checker", checkup.DatabaseChecks(flagCheckDir, flagSQLitePath))
	},
}

var checkSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "Check the host environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks("System Checker", checkup.SystemChecks())
	},
}

var checkWebsiteCmd = &cobra.Command{
	Use:   "website <url>",
	Short: "Check website reachability, latency, and TLS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := flagWebsiteTimeout
		if !cmd.Flags().Changed("timeout") {
			if cfg, err := config.Load(flagCheckDir); err == nil && cfg.WebsiteTimeoutSeconds > 0 {
				timeout = time.Duration(cfg.WebsiteTimeoutSeconds) * time.Second
			}
		}
		probe := checkup.NewProbe(timeout)
		return runChecks("Website Checker", checkup.WebsiteChecks(probe, args[0]))
	},
}

func init() {
	checkCmd.PersistentFlags().StringVar(&flagCheckDir, "dir", ".", "Directory to check")
	checkDatabaseCmd.Flags().StringVar(&flagSQLitePath, "sqlite", "", "Path to an SQLite database to probe")
	checkWebsiteCmd.Flags().DurationVar(&flagWebsiteTimeout, "timeout", 10*time.Second, "HTTP request timeout")
	checkCmd.AddCommand(checkGitCmd, checkDatabaseCmd, checkSystemCmd, checkWebsiteCmd)
	rootCmd.AddCommand(checkCmd)
}

func runChecks(title string, checks []checkup.Check) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	results := checkup.RunAll(ctx, checks)
	for _, r := range results {
		symbol := green("✓")
		if !r.Pass {
			symbol = red("✗")
		}
		fmt.Printf("%s %s: %s\n", symbol, r.Name, r.Detail)
	}
	checkup.WriteSummary(os.Stdout, title, results)

	if passed, total := checkup.Summary(results); passed != total {
		return fmt.Errorf("%d of %d checks failed", total-passed, total)
	}
	return nil
}
