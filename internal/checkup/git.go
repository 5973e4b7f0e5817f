package checkup

import (
	"context"
	"strings"
	"time"

	"github.com/SureshAIOrigin/automatic-eureka/internal/cmdutil"
)

const gitTimeout = 5 * time.Second

// GitChecks probes the git installation and the repository at dir.
func GitChecks(dir string) []Check {
	return []Check{
		{Name: "git installed", Run: func(ctx context.Context) Result {
			version, ok := cmdutil.Installed(ctx, "git")
			if !ok {
				return fail("git installed", "git not found on PATH")
			}
			return pass("git installed", "%s", version)
		}},
		{Name: "inside work tree", Run: func(ctx context.Context) Result {
			out, err := cmdutil.Run(ctx, dir, gitTimeout, "git", "rev-parse", "--is-inside-work-tree")
			if err != nil || out != "true" {
				return fail("inside work tree", "not a git repository")
			}
			return pass("inside work tree", ".git directory found")
		}},
		{Name: "current branch", Run: func(ctx context.Context) Result {
			out, err := cmdutil.Run(ctx, dir, gitTimeout, "git", "rev-parse", "--abbrev-ref", "HEAD")
			if err != nil {
				return fail("current branch", "cannot resolve HEAD: %v", err)
			}
			return pass("current branch", "%s", out)
		}},
		{Name: "working tree clean", Run: func(ctx context.Context) Result {
			out, err := cmdutil.Run(ctx, dir, gitTimeout, "git", "status", "--porcelain")
			if err != nil {
				return fail("working tree clean", "git status failed: %v", err)
			}
			if out == "" {
				return pass("working tree clean", "no uncommitted changes")
			}
			n := len(strings.Split(out, "\n"))
			return fail("working tree clean", "%d uncommitted change(s)", n)
		}},
	}
}
