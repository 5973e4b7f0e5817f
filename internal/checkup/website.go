package checkup

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"
)

// slowThreshold is the response time above which a site is reported slow.
const slowThreshold = 2 * time.Second

// certExpiryWindow is how close to expiry a TLS certificate may be before
// the check fails.
const certExpiryWindow = 30 * 24 * time.Hour

// Probe issues the HTTP requests behind the website checks.
type Probe struct {
	httpClient *http.Client
	userAgent  string
}

// NewProbe returns a probe whose requests time out after timeout.
func NewProbe(timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Probe{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "eureka-website-checker",
	}
}

// WithHTTPClient overrides the underlying HTTP client (useful for tests).
func (p *Probe) WithHTTPClient(c *http.Client) *Probe {
	cp := *p
	cp.httpClient = c
	return &cp
}

func (p *Probe) get(ctx context.Context, target string) (*http.Response, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", p.userAgent)
	start := time.Now()
	resp, err := p.httpClient.Do(req)
	return resp, time.Since(start), err
}

// WebsiteChecks probes DNS, connectivity, latency, and TLS expiry for target.
func WebsiteChecks(p *Probe, target string) []Check {
	return []Check{
		{Name: "dns resolution", Run: func(ctx context.Context) Result {
			u, err := url.Parse(target)
			if err != nil || u.Hostname() == "" {
				return fail("dns resolution", "invalid URL %q", target)
			}
			addrs, err := net.DefaultResolver.LookupHost(ctx, u.Hostname())
			if err != nil {
				return fail("dns resolution", "%v", err)
			}
			return pass("dns resolution", "%s resolves to %d address(es)", u.Hostname(), len(addrs))
		}},
		{Name: "connectivity", Run: func(ctx context.Context) Result {
			resp, elapsed, err := p.get(ctx, target)
			if err != nil {
				return fail("connectivity", "%v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode >= 400 {
				return fail("connectivity", "HTTP %d", resp.StatusCode)
			}
			return pass("connectivity", "HTTP %d in %dms", resp.StatusCode, elapsed.Milliseconds())
		}},
		{Name: "response time", Run: func(ctx context.Context) Result {
			resp, elapsed, err := p.get(ctx, target)
			if err != nil {
				return fail("response time", "%v", err)
			}
			resp.Body.Close()
			if elapsed > slowThreshold {
				return fail("response time", "%dms exceeds %s", elapsed.Milliseconds(), slowThreshold)
			}
			return pass("response time", "%dms", elapsed.Milliseconds())
		}},
		{Name: "tls certificate", Run: func(ctx context.Context) Result {
			u, err := url.Parse(target)
			if err != nil {
				return fail("tls certificate", "invalid URL %q", target)
			}
			if u.Scheme != "https" {
				return pass("tls certificate", "skipped (not https)")
			}
			resp, _, err := p.get(ctx, target)
			if err != nil {
				return fail("tls certificate", "%v", err)
			}
			defer resp.Body.Close()
			if resp.TLS == nil || len(resp.TLS.PeerCertificates) == 0 {
				return fail("tls certificate", "no certificate presented")
			}
			expiry := resp.TLS.PeerCertificates[0].NotAfter
			left := time.Until(expiry)
			if left < certExpiryWindow {
				return fail("tls certificate", "expires %s", expiry.Format(time.DateOnly))
			}
			return pass("tls certificate", "valid until %s", expiry.Format(time.DateOnly))
		}},
	}
}
