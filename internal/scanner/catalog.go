package scanner

import (
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/SureshAIOrigin/automatic-eureka/internal/analyzers"
)

// Spec binds an analyzer to its rule metadata.
type Spec struct {
	RuleID     string
	Title      string
	Category   Category
	Severity   Severity
	Suggestion string
	Analyzer   *analysis.Analyzer
}

// RuleSyntaxErrorID is reported by the scanner itself when parsing fails.
const RuleSyntaxErrorID = "PERF000"

// Catalog returns every known rule in a fixed order. The order also breaks
// ties when two rules report at the same source position.
func Catalog() []Spec {
	return []Spec{
		{RuleID: "PERF001", Title: "String accumulation with += in loop", Category: CategoryConcatInLoop, Severity: SeverityHigh, Suggestion: "Use strings.Builder, or grow slices with append", Analyzer: analyzers.AnalyzerConcatInLoop},
		{RuleID: "PERF002", Title: "Nested loop", Category: CategoryNestedLoop, Severity: SeverityMedium, Suggestion: "Index one side with a map[...]struct{} for O(1) lookups", Analyzer: analyzers.AnalyzerNestedLoop},
		{RuleID: "PERF003", Title: "Membership test on slice literal", Category: CategoryListMembership, Severity: SeverityMedium, Suggestion: "Build a map set once and test keys", Analyzer: analyzers.AnalyzerListMembership},
		{RuleID: "PERF004", Title: "Range over len()", Category: CategoryLenInRange, Severity: SeverityLow, Suggestion: "Range over the collection directly", Analyzer: analyzers.AnalyzerLenInRange},
	}
}

// BuildSpecs selects rules to run based on include/disable flags. If
// includeCSV is non-empty, only those rules are enabled. Otherwise, all known
// rules are enabled except those explicitly disabled via disableCSV.
func BuildSpecs(includeCSV, disableCSV string) []Spec {
	catalog := Catalog()
	if strings.TrimSpace(includeCSV) != "" {
		include := map[string]struct{}{}
		for _, id := range splitAndTrim(includeCSV) {
			if id != "" {
				include[id] = struct{}{}
			}
		}
		var out []Spec
		for _, spec := range catalog {
			if _, ok := include[spec.RuleID]; ok {
				out = append(out, spec)
			}
		}
		return out
	}
	disabled := map[string]struct{}{}
	for _, id := range splitAndTrim(disableCSV) {
		if id != "" {
			disabled[id] = struct{}{}
		}
	}
	var out []Spec
	for _, spec := range catalog {
		if _, off := disabled[spec.RuleID]; off {
			continue
		}
		out = append(out, spec)
	}
	return out
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
