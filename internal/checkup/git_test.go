package checkup

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func resultByName(results []Result, name string) (Result, bool) {
	for _, r := range results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

func TestGitChecks_CleanRepository(t *testing.T) {
	dir := t.TempDir()
	git(t, dir, "init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi\n"), 0o644))
	git(t, dir, "add", ".")
	git(t, dir, "commit", "-m", "initial")

	results := RunAll(context.Background(), GitChecks(dir))
	for _, r := range results {
		assert.True(t, r.Pass, "%s: %s", r.Name, r.Detail)
	}
}

func TestGitChecks_DirtyWorkingTree(t *testing.T) {
	dir := t.TempDir()
	git(t, dir, "init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi\n"), 0o644))

	results := RunAll(context.Background(), GitChecks(dir))
	r, ok := resultByName(results, "working tree clean")
	require.True(t, ok)
	assert.False(t, r.Pass)
	assert.Contains(t, r.Detail, "uncommitted")
}

func TestGitChecks_NotARepository(t *testing.T) {
	results := RunAll(context.Background(), GitChecks(t.TempDir()))
	r, ok := resultByName(results, "inside work tree")
	require.True(t, ok)
	assert.False(t, r.Pass)
}
