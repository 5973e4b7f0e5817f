package scanner

import (
	"fmt"
	"strings"
	"time"
)

// Severity indicates how severe a finding is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
	SeverityError  Severity = "error"
)

var severityRank = map[Severity]int{
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
	SeverityError:  4,
}

// AtLeast reports whether s is as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

// ParseSeverity converts a string to a Severity level.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "error":
		return SeverityError, nil
	default:
		return "", fmt.Errorf("unknown severity: %q", s)
	}
}

// Category identifies the kind of anti-pattern a finding reports.
type Category string

const (
	CategoryConcatInLoop   Category = "ConcatInLoop"
	CategoryNestedLoop     Category = "NestedLoop"
	CategoryListMembership Category = "ListMembership"
	CategoryLenInRange     Category = "LenInRange"
	CategorySyntaxError    Category = "SyntaxError"
)

// Finding is a single reported anti-pattern occurrence. Findings are
// immutable once produced; the scanner emits them in source-position order,
// which for a single file equals the order a depth-first walk visits the
// triggering nodes.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Filename string   `json:"filename"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
	Function string   `json:"function,omitempty"`
}

// Report holds the complete results of scanning one or more source units.
type Report struct {
	Findings []Finding     `json:"findings"`
	Target   string        `json:"target,omitempty"`
	RulesRun int           `json:"rules_run"`
	Duration time.Duration `json:"-"`
}

// CountBySeverity tallies findings per severity level.
func (r *Report) CountBySeverity() map[Severity]int {
	counts := map[Severity]int{}
	for _, f := range r.Findings {
		counts[f.Severity]++
	}
	return counts
}

// MaxSeverity returns the highest severity present, or "" for a clean report.
func (r *Report) MaxSeverity() Severity {
	var max Severity
	for _, f := range r.Findings {
		if severityRank[f.Severity] > severityRank[max] {
			max = f.Severity
		}
	}
	return max
}
