package request

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the total deadline applied to a call when the
	// caller does not override it
	DefaultTimeout = 2 * time.Minute
	// DefaultConnLimit caps simultaneously open connections per host
	DefaultConnLimit = 30
	// DefaultIdleConnTimeout is how long an idle connection may linger
	// before the session would drop it mid-call
	DefaultIdleConnTimeout = 90 * time.Second
)

// session is the client state owned by a single facade call. It wraps one
// http.Client with its own transport so that nothing is shared across calls.
type session struct {
	httpClient *http.Client
	transport  *http.Transport
}

func newSession(timeout time.Duration, followRedirects bool) *session {
	transport := &http.Transport{
		MaxConnsPerHost:     DefaultConnLimit,
		MaxIdleConnsPerHost: DefaultConnLimit,
		IdleConnTimeout:     DefaultIdleConnTimeout,
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !followRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}

	return &session{
		transport: transport,
		httpClient: &http.Client{
			Transport:     transport,
			Timeout:       timeout,
			CheckRedirect: redirectPolicy,
		},
	}
}

// close releases the session's connections. Called before the facade
// returns, on both the success and the error path.
func (s *session) close() {
	s.transport.CloseIdleConnections()
}
