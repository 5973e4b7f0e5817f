// Package cmdutil runs external commands with a timeout and captured output.
package cmdutil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Run executes name with args under a timeout and returns trimmed combined
// output. On failure the output (stdout, falling back to stderr) is still
// returned alongside the error.
func Run(ctx context.Context, dir string, timeout time.Duration, name string, args ...string) (string, error) {
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx2, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if err != nil {
		if out == "" {
			out = strings.TrimSpace(stderr.String())
		}
		return out, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out, nil
}

// Installed reports whether a tool responds to a version probe, returning
// the first line of its version output when it does.
func Installed(ctx context.Context, tool string, versionArgs ...string) (string, bool) {
	if len(versionArgs) == 0 {
		versionArgs = []string{"--version"}
	}
	out, err := Run(ctx, "", 5*time.Second, tool, versionArgs...)
	if err != nil {
		return "", false
	}
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i]
	}
	return out, true
}
