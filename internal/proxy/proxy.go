// Package proxy forwards backend API requests from the application host to
// the upstream simulation service.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/JaimeStill/mirofish/pkg/handlers"
	"github.com/JaimeStill/mirofish/pkg/routes"
	"github.com/sony/gobreaker"
)

// ErrUpstreamUnavailable is reported to clients when the upstream cannot be reached.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// Options tunes the reverse proxy.
type Options struct {
	// MountPrefix is the path the caller stripped before dispatching (for
	// example "/api"). It is restored on the outbound request so the upstream
	// sees the original path.
	MountPrefix string

	// Timeout bounds the wait for upstream response headers.
	Timeout time.Duration

	// BreakerFailures is the number of consecutive transport failures that
	// opens the circuit. Zero disables the breaker, which configuration
	// selects with a negative proxy.breaker_failures.
	BreakerFailures uint32

	// BreakerTimeout is how long the circuit stays open before a trial request.
	BreakerTimeout time.Duration
}

// New returns a reverse proxy to upstream.
func New(upstream *url.URL, opts Options, logger *slog.Logger) *httputil.ReverseProxy {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = opts.Timeout

	var rt http.RoundTripper = transport
	if opts.BreakerFailures > 0 {
		rt = newBreakerTransport(upstream.Host, transport, opts, logger)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = opts.MountPrefix + pr.Out.URL.Path
			if pr.Out.URL.RawPath != "" {
				pr.Out.URL.RawPath = opts.MountPrefix + pr.Out.URL.RawPath
			}
			pr.SetURL(upstream)
			pr.SetXForwarded()
		},
		Transport: rt,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			status := http.StatusBadGateway
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				status = http.StatusServiceUnavailable
			}
			handlers.RespondError(w, r, logger, status, fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, upstream.Host, err))
		},
	}
}

// breakerTransport fails fast while the upstream is repeatedly unreachable.
// Only transport errors count as failures; upstream 5xx responses are
// forwarded to the client unchanged.
type breakerTransport struct {
	next http.RoundTripper
	cb   *gobreaker.CircuitBreaker
}

func newBreakerTransport(name string, next http.RoundTripper, opts Options, logger *slog.Logger) *breakerTransport {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("upstream circuit breaker state change",
				"upstream", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &breakerTransport{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.cb.Execute(func() (any, error) {
		return t.next.RoundTrip(req)
	})
	if err != nil {
		return nil, err
	}
	return res.(*http.Response), nil
}

// Routes returns a route group forwarding every method under each prefix.
func Routes(handler http.Handler, prefixes ...string) routes.Group {
	g := routes.Group{
		Description: "Backend API pass-through",
	}
	for _, p := range prefixes {
		g.Routes = append(g.Routes,
			routes.Route{Pattern: p, Handler: handler.ServeHTTP},
			routes.Route{Pattern: p + "/", Handler: handler.ServeHTTP},
		)
	}
	return g
}
