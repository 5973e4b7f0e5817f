package checkup

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll_IndependentChecks(t *testing.T) {
	checks := []Check{
		{Name: "first", Run: func(ctx context.Context) Result { return fail("first", "boom") }},
		{Name: "second", Run: func(ctx context.Context) Result { return pass("second", "ok") }},
	}
	results := RunAll(context.Background(), checks)
	require.Len(t, results, 2)
	assert.False(t, results[0].Pass)
	assert.True(t, results[1].Pass)

	passed, total := Summary(results)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 2, total)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, "Database Checker", []Result{
		{Name: "a", Pass: true},
		{Name: "b", Pass: false},
	})
	assert.Contains(t, buf.String(), "=== Database Checker ===")
	assert.Contains(t, buf.String(), "Passed: 1/2 checks")
}

func TestSystemChecks_AllPass(t *testing.T) {
	results := RunAll(context.Background(), SystemChecks())
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, r.Pass, "%s: %s", r.Name, r.Detail)
	}
}
