package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_SyntaxError_SingleFinding(t *testing.T) {
	rep, err := Scan([]byte("package a\nfunc f( {"), "bad.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 1)

	f := rep.Findings[0]
	assert.Equal(t, CategorySyntaxError, f.Category)
	assert.Equal(t, SeverityError, f.Severity)
	assert.Equal(t, RuleSyntaxErrorID, f.RuleID)
	assert.Greater(t, f.Line, 0)
	assert.Contains(t, f.Message, "syntax error")
	assert.Empty(t, f.Function)
}

func TestScan_CommentOnly_NoFindings(t *testing.T) {
	src := `// Package a does nothing interesting.
package a

// Just comments below.
`
	rep, err := Scan([]byte(src), "empty.go")
	require.NoError(t, err)
	assert.Empty(t, rep.Findings)
}

func TestScan_ConcatInLoop(t *testing.T) {
	src := `package a

func build(items []string) string {
	result := ""
	for _, it := range items {
		result += it
	}
	return result
}
`
	rep, err := Scan([]byte(src), "concat.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 1)

	f := rep.Findings[0]
	assert.Equal(t, CategoryConcatInLoop, f.Category)
	assert.Equal(t, SeverityHigh, f.Severity)
	assert.Equal(t, 6, f.Line)
	assert.Equal(t, "build", f.Function)
}

func TestScan_NestedLoop_FirstStatementOnly(t *testing.T) {
	first := `package a

func f(xs, ys []int) {
	for _, x := range xs {
		for _, y := range ys {
			_ = x + y
		}
	}
}
`
	rep, err := Scan([]byte(first), "nested.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 1)
	assert.Equal(t, CategoryNestedLoop, rep.Findings[0].Category)
	assert.Equal(t, SeverityMedium, rep.Findings[0].Severity)
	assert.Equal(t, 4, rep.Findings[0].Line)

	second := `package a

func f(xs, ys []int) {
	for _, x := range xs {
		_ = x
		for _, y := range ys {
			_ = y
		}
	}
}
`
	rep, err = Scan([]byte(second), "nested.go")
	require.NoError(t, err)
	assert.Empty(t, rep.Findings, "inner loop in second statement is not reported")
}

func TestScan_ListMembership(t *testing.T) {
	src := `package a

import "slices"

func f(x int) bool {
	if slices.Contains([]int{1, 2, 3}, x) {
		return true
	}
	return false
}
`
	rep, err := Scan([]byte(src), "member.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 1)
	assert.Equal(t, CategoryListMembership, rep.Findings[0].Category)
	assert.Equal(t, SeverityMedium, rep.Findings[0].Severity)
	assert.Equal(t, 6, rep.Findings[0].Line)
	assert.Equal(t, "f", rep.Findings[0].Function)
}

func TestScan_ListMembership_PackageLevel_NoFunction(t *testing.T) {
	src := `package a

import "slices"

var ok = slices.Contains([]int{1, 2, 3}, 0)
`
	rep, err := Scan([]byte(src), "member.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 1)
	assert.Empty(t, rep.Findings[0].Function)
}

func TestScan_LenInRange(t *testing.T) {
	src := `package a

func f(items []string) {
	for i := range len(items) {
		_ = items[i]
	}
	for i := range 10 {
		_ = i
	}
}
`
	rep, err := Scan([]byte(src), "leninrange.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 1)
	assert.Equal(t, CategoryLenInRange, rep.Findings[0].Category)
	assert.Equal(t, SeverityLow, rep.Findings[0].Severity)
	assert.Equal(t, 4, rep.Findings[0].Line)
}

func TestScan_FindingsInVisitOrder(t *testing.T) {
	// LenInRange triggers on the loop header, ConcatInLoop on a body
	// statement below it; the report keeps source order, not rule order.
	src := `package a

func f(items []string) string {
	out := ""
	for i := range len(items) {
		out += items[i]
	}
	return out
}
`
	rep, err := Scan([]byte(src), "order.go")
	require.NoError(t, err)
	require.Len(t, rep.Findings, 2)
	assert.Equal(t, CategoryLenInRange, rep.Findings[0].Category)
	assert.Equal(t, CategoryConcatInLoop, rep.Findings[1].Category)
	assert.Less(t, rep.Findings[0].Line, rep.Findings[1].Line)
}

func TestScan_Deterministic(t *testing.T) {
	src := []byte(`package a

import "slices"

func f(xs, ys []int) {
	for _, x := range xs {
		for range ys {
		}
		_ = slices.Contains([]int{1}, x)
	}
}
`)
	first, err := Scan(src, "repeat.go")
	require.NoError(t, err)
	second, err := Scan(src, "repeat.go")
	require.NoError(t, err)
	assert.Equal(t, first.Findings, second.Findings)
}

func TestScanWithSpecs_DisableRule(t *testing.T) {
	src := []byte(`package a

func f(items []string) string {
	out := ""
	for _, it := range items {
		out += it
	}
	return out
}
`)
	rep, err := ScanWithSpecs(src, "x.go", BuildSpecs("", "PERF001"))
	require.NoError(t, err)
	assert.Empty(t, rep.Findings)

	rep, err = ScanWithSpecs(src, "x.go", BuildSpecs("PERF001", ""))
	require.NoError(t, err)
	assert.Len(t, rep.Findings, 1)
}

func TestBuildSpecs(t *testing.T) {
	assert.Len(t, BuildSpecs("", ""), len(Catalog()))
	assert.Len(t, BuildSpecs("PERF001, PERF003", ""), 2)
	assert.Len(t, BuildSpecs("", "PERF001,PERF002"), len(Catalog())-2)
	assert.Empty(t, BuildSpecs("NOPE", ""))
}

func TestSeverity(t *testing.T) {
	assert.True(t, SeverityHigh.AtLeast(SeverityMedium))
	assert.True(t, SeverityError.AtLeast(SeverityHigh))
	assert.False(t, SeverityLow.AtLeast(SeverityMedium))

	sev, err := ParseSeverity("HIGH")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, sev)
	_, err = ParseSeverity("critical")
	assert.Error(t, err)
}
