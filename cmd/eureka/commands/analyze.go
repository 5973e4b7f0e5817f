package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SureshAIOrigin/automatic-eureka/internal/config"
	"github.com/SureshAIOrigin/automatic-eureka/internal/output"
	"github.com/SureshAIOrigin/automatic-eureka/internal/scanner"
)

var (
	flagFailOn   string
	flagSeverity string
	flagInclude  string
	flagDisable  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.go> [more files...]",
	Short: "Scan Go source files for performance anti-patterns",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagFailOn, "fail-on", "high", "Exit non-zero if findings at or above this severity exist (low, medium, high, error)")
	analyzeCmd.Flags().StringVar(&flagSeverity, "severity", "low", "Minimum severity to report (low, medium, high, error)")
	analyzeCmd.Flags().StringVar(&flagInclude, "include", "", "Only run these rule IDs (comma-separated)")
	analyzeCmd.Flags().StringVar(&flagDisable, "disable", "", "Rule IDs to disable (comma-separated)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadAnalyzeConfig(cmd, args[0])

	minSev, err := scanner.ParseSeverity(flagSeverity)
	if err != nil {
		return fmt.Errorf("invalid --severity: %w", err)
	}
	failOn, err := scanner.ParseSeverity(flagFailOn)
	if err != nil {
		return fmt.Errorf("invalid --fail-on: %w", err)
	}

	disableCSV := flagDisable
	if !cmd.Flags().Changed("disable") && len(cfg.DisabledRules) > 0 {
		disableCSV = strings.Join(cfg.DisabledRules, ",")
	}
	specs := scanner.BuildSpecs(flagInclude, disableCSV)
	if len(specs) == 0 {
		return fmt.Errorf("no rules selected")
	}

	aggregate := &scanner.Report{Target: strings.Join(args, ", "), RulesRun: len(specs)}
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		rep, err := scanner.ScanWithSpecs(src, path, specs)
		if err != nil {
			return err
		}
		slog.Debug("scanned file", "path", path, "findings", len(rep.Findings))
		for _, f := range rep.Findings {
			if f.Severity.AtLeast(minSev) {
				aggregate.Findings = append(aggregate.Findings, f)
			}
		}
		aggregate.Duration += rep.Duration
	}

	if err := writeReport(aggregate); err != nil {
		return err
	}

	if max := aggregate.MaxSeverity(); max != "" && max.AtLeast(failOn) {
		return fmt.Errorf("findings at or above %s severity", failOn)
	}
	return nil
}

func loadAnalyzeConfig(cmd *cobra.Command, target string) config.Config {
	cfg, err := config.Load(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if !cmd.Flags().Changed("severity") && cfg.Severity != "" {
		flagSeverity = cfg.Severity
	}
	if !cmd.Flags().Changed("fail-on") && cfg.FailOn != "" {
		flagFailOn = cfg.FailOn
	}
	if !cmd.Root().PersistentFlags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	return cfg
}

func writeReport(rep *scanner.Report) error {
	formatter, err := output.New(flagFormat, flagNoColor)
	if err != nil {
		return err
	}
	w := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("create %s: %w", flagOutput, err)
		}
		defer f.Close()
		w = f
	}
	return formatter.Format(w, rep)
}
