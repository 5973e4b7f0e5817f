// Package logreport parses bracketed application logs and aggregates level
// counts, error types, and user activity in a single streaming pass.
package logreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// DefaultPattern matches lines like "[2024-01-01 10:00:00] ERROR: message".
const DefaultPattern = `^\[(.*?)\] (\w+): (.*)$`

var userPattern = regexp.MustCompile(`User (\w+)`)

// Entry is one parsed log line.
type Entry struct {
	Timestamp string
	Level     string
	Message   string
}

// Stats summarizes an analyzed log stream.
type Stats struct {
	Total       int            `json:"total"`
	LevelCounts map[string]int `json:"level_counts"`
	ErrorCount  int            `json:"error_count"`
	WarnCount   int            `json:"warn_count"`
	UniqueUsers int            `json:"unique_users"`
}

// TypeCount pairs an error type with its occurrence count.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Analyzer accumulates log statistics. Patterns are compiled once at
// construction; Read may be called multiple times to aggregate several
// streams.
type Analyzer struct {
	entryPattern *regexp.Regexp
	total        int
	levelCounts  map[string]int
	errorTypes   map[string]int
	users        map[string]struct{}
	errors       []Entry
}

// New returns an Analyzer using DefaultPattern.
func New() *Analyzer {
	a, _ := NewWithPattern(DefaultPattern)
	return a
}

// NewWithPattern returns an Analyzer for a custom line pattern. The pattern
// must have three capture groups: timestamp, level, message.
func NewWithPattern(pattern string) (*Analyzer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile log pattern: %w", err)
	}
	if re.NumSubexp() != 3 {
		return nil, fmt.Errorf("log pattern needs 3 capture groups, has %d", re.NumSubexp())
	}
	return &Analyzer{
		entryPattern: re,
		levelCounts:  map[string]int{},
		errorTypes:   map[string]int{},
		users:        map[string]struct{}{},
	}, nil
}

// Read consumes r line by line, categorizing entries as it goes. Lines that
// do not match the pattern are skipped.
func (a *Analyzer) Read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := a.entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := Entry{Timestamp: m[1], Level: m[2], Message: m[3]}
		a.total++
		a.levelCounts[entry.Level]++
		if entry.Level == "ERROR" {
			a.errors = append(a.errors, entry)
			a.errorTypes[errorType(entry.Message)]++
		}
		if um := userPattern.FindStringSubmatch(entry.Message); um != nil {
			a.users[um[1]] = struct{}{}
		}
	}
	return sc.Err()
}

// ReadFile streams the log file at path through Read.
func (a *Analyzer) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := a.Read(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// errorType is the message prefix before the first colon, or "Unknown".
func errorType(message string) string {
	if t, _, ok := strings.Cut(message, ":"); ok {
		return t
	}
	return "Unknown"
}

// Stats returns the aggregate counters.
func (a *Analyzer) Stats() Stats {
	counts := make(map[string]int, len(a.levelCounts))
	for k, v := range a.levelCounts {
		counts[k] = v
	}
	return Stats{
		Total:       a.total,
		LevelCounts: counts,
		ErrorCount:  a.levelCounts["ERROR"],
		WarnCount:   a.levelCounts["WARN"],
		UniqueUsers: len(a.users),
	}
}

// TopErrorTypes returns the n most frequent error types, most frequent
// first; ties break alphabetically so output is stable.
func (a *Analyzer) TopErrorTypes(n int) []TypeCount {
	out := make([]TypeCount, 0, len(a.errorTypes))
	for t, c := range a.errorTypes {
		out = append(out, TypeCount{Type: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ErrorsForUser returns the error entries mentioning the given user.
func (a *Analyzer) ErrorsForUser(user string) []Entry {
	needle := "User " + user
	var out []Entry
	for _, e := range a.errors {
		if strings.Contains(e.Message, needle) {
			out = append(out, e)
		}
	}
	return out
}

// Report renders the text summary block.
func (a *Analyzer) Report() string {
	stats := a.Stats()
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "%s\nLOG ANALYSIS REPORT\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Total logs: %d\n", stats.Total)
	fmt.Fprintf(&b, "Errors: %d\n", stats.ErrorCount)
	fmt.Fprintf(&b, "Warnings: %d\n", stats.WarnCount)
	fmt.Fprintf(&b, "Unique users: %d\n", stats.UniqueUsers)
	fmt.Fprintf(&b, "%s\nError Types:\n", strings.Repeat("-", 50))
	for _, tc := range a.TopErrorTypes(0) {
		fmt.Fprintf(&b, "  %s: %d\n", tc.Type, tc.Count)
	}
	return b.String()
}
