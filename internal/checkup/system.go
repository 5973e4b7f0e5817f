package checkup

import (
	"context"
	"os"
	"runtime"
)

// SystemChecks probes the host environment the tool runs under.
func SystemChecks() []Check {
	return []Check{
		{Name: "go runtime", Run: func(ctx context.Context) Result {
			return pass("go runtime", "%s on %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		}},
		{Name: "cpu count", Run: func(ctx context.Context) Result {
			n := runtime.NumCPU()
			if n < 1 {
				return fail("cpu count", "no CPUs reported")
			}
			return pass("cpu count", "%d logical CPU(s)", n)
		}},
		{Name: "hostname", Run: func(ctx context.Context) Result {
			host, err := os.Hostname()
			if err != nil {
				return fail("hostname", "%v", err)
			}
			return pass("hostname", "%s", host)
		}},
		{Name: "working directory", Run: func(ctx context.Context) Result {
			wd, err := os.Getwd()
			if err != nil {
				return fail("working directory", "%v", err)
			}
			return pass("working directory", "%s", wd)
		}},
		{Name: "temp dir writable", Run: func(ctx context.Context) Result {
			f, err := os.CreateTemp("", "eureka-checkup-*")
			if err != nil {
				return fail("temp dir writable", "%v", err)
			}
			name := f.Name()
			f.Close()
			os.Remove(name)
			return pass("temp dir writable", "%s", os.TempDir())
		}},
		{Name: "path set", Run: func(ctx context.Context) Result {
			if os.Getenv("PATH") == "" {
				return fail("path set", "PATH is empty")
			}
			return pass("path set", "PATH is set")
		}},
	}
}
