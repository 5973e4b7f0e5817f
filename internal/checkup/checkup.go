// Package checkup implements the eureka health checkers: small pass/fail
// probes covering the local git repository, databases, the host system, and
// website reachability.
package checkup

import (
	"context"
	"fmt"
	"io"
)

// Result is the outcome of a single check.
type Result struct {
	Name   string `json:"name"`
	Pass   bool   `json:"pass"`
	Detail string `json:"detail,omitempty"`
}

// Check is a named probe. Run must honor ctx cancellation for anything that
// touches the network or spawns a process.
type Check struct {
	Name string
	Run  func(ctx context.Context) Result
}

// RunAll executes checks in order and returns their results. Checks are
// independent; one failing never stops the rest.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		r := c.Run(ctx)
		if r.Name == "" {
			r.Name = c.Name
		}
		results = append(results, r)
	}
	return results
}

// Summary counts passed checks.
func Summary(results []Result) (passed, total int) {
	for _, r := range results {
		if r.Pass {
			passed++
		}
	}
	return passed, len(results)
}

// WriteSummary prints the standard closing block for a checker run.
func WriteSummary(w io.Writer, title string, results []Result) {
	passed, total := Summary(results)
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	fmt.Fprintf(w, "Passed: %d/%d checks\n", passed, total)
}

func pass(name, format string, args ...any) Result {
	return Result{Name: name, Pass: true, Detail: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...any) Result {
	return Result{Name: name, Pass: false, Detail: fmt.Sprintf(format, args...)}
}
