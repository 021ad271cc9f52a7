package request

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// call collects everything a single facade invocation needs: the verb, the
// target, and the pass-through options. It exists for the duration of one
// Do call only.
type call struct {
	method  string
	url     string
	headers map[string]string
	query   map[string]string
	body    []byte
	bodyErr error

	timeout         time.Duration
	followRedirects bool
}

// Option configures a single request. Options are forwarded to the
// underlying client untouched; none of them introduce retries or recovery.
type Option func(*call)

func newCall(method, requestURL string, opts ...Option) *call {
	c := &call{
		method:          strings.ToUpper(method),
		url:             requestURL,
		headers:         make(map[string]string),
		query:           make(map[string]string),
		timeout:         DefaultTimeout,
		followRedirects: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHeader sets a single request header.
func WithHeader(key, value string) Option {
	return func(c *call) {
		c.headers[key] = value
	}
}

// WithHeaders sets multiple request headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *call) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithQueryParam adds a single query string parameter.
func WithQueryParam(key, value string) Option {
	return func(c *call) {
		c.query[key] = value
	}
}

// WithQueryParams adds multiple query string parameters.
func WithQueryParams(params map[string]string) Option {
	return func(c *call) {
		for k, v := range params {
			c.query[k] = v
		}
	}
}

// WithBody sends raw bytes as the request body. The caller is responsible
// for the Content-Type header.
func WithBody(body []byte) Option {
	return func(c *call) {
		c.body = body
	}
}

// WithJSON marshals v and sends it as an application/json body. A marshal
// failure surfaces as the error of the facade call itself.
func WithJSON(v any) Option {
	return func(c *call) {
		data, err := json.Marshal(v)
		if err != nil {
			c.bodyErr = fmt.Errorf("marshal json body: %w", err)
			return
		}
		c.body = data
		if c.headers["Content-Type"] == "" {
			c.headers["Content-Type"] = "application/json"
		}
	}
}

// WithForm sends url-encoded form values as the request body.
func WithForm(values map[string]string) Option {
	return func(c *call) {
		form := url.Values{}
		for k, v := range values {
			form.Set(k, v)
		}
		c.body = []byte(form.Encode())
		if c.headers["Content-Type"] == "" {
			c.headers["Content-Type"] = "application/x-www-form-urlencoded"
		}
	}
}

// WithTimeout overrides the total deadline for this call.
func WithTimeout(d time.Duration) Option {
	return func(c *call) {
		c.timeout = d
	}
}

// WithBearerToken sets a Bearer Authorization header.
func WithBearerToken(token string) Option {
	return func(c *call) {
		c.headers["Authorization"] = "Bearer " + token
	}
}

// WithBasicAuth sets a Basic Authorization header.
func WithBasicAuth(username, password string) Option {
	return func(c *call) {
		creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
		c.headers["Authorization"] = "Basic " + creds
	}
}

// WithFollowRedirects enables or disables redirect following for this call.
func WithFollowRedirects(follow bool) Option {
	return func(c *call) {
		c.followRedirects = follow
	}
}

// buildURL merges the query options into the target URL.
func (c *call) buildURL() string {
	if len(c.query) == 0 {
		return c.url
	}

	u, err := url.Parse(c.url)
	if err != nil {
		return c.url
	}

	q := u.Query()
	for k, v := range c.query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q (only http and https are allowed)", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}

	return nil
}
