package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodHead:    {},
	http.MethodOptions: {},
}

// Do performs one HTTP request synchronously and returns its response.
//
// The transfer runs on its own goroutine inside a session scoped to this
// call; Do blocks until the transfer completes or ctx is done, and the
// session is torn down before Do returns. The method name is matched
// case-insensitively against the standard verbs.
func Do(ctx context.Context, method, requestURL string, opts ...Option) (*Response, error) {
	c := newCall(method, requestURL, opts...)

	if c.bodyErr != nil {
		return nil, c.bodyErr
	}
	if _, ok := supportedMethods[c.method]; !ok {
		return nil, fmt.Errorf("unsupported method: %q", method)
	}
	if err := ValidateURL(c.url); err != nil {
		return nil, err
	}

	sess := newSession(c.timeout, c.followRedirects)
	defer sess.close()

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		resp *Response
		err  error
	}

	done := make(chan outcome, 1)
	go func() {
		resp, err := send(callCtx, sess, c)
		done <- outcome{resp: resp, err: err}
	}()

	select {
	case out := <-done:
		return out.resp, out.err
	case <-ctx.Done():
		cancel()
		// The transfer goroutine must unwind before the session closes.
		<-done
		return nil, ctx.Err()
	}
}

// Get performs a GET request.
func Get(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return Do(ctx, http.MethodGet, url, opts...)
}

// Post performs a POST request.
func Post(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return Do(ctx, http.MethodPost, url, opts...)
}

// Put performs a PUT request.
func Put(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return Do(ctx, http.MethodPut, url, opts...)
}

// Patch performs a PATCH request.
func Patch(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return Do(ctx, http.MethodPatch, url, opts...)
}

// Delete performs a DELETE request.
func Delete(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return Do(ctx, http.MethodDelete, url, opts...)
}

func send(ctx context.Context, sess *session, c *call) (*Response, error) {
	var body io.Reader
	if len(c.body) > 0 {
		body = bytes.NewReader(c.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, c.method, c.buildURL(), body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Connection", "keep-alive")
	if !hasHeader(c.headers, "X-Request-Id") {
		httpReq.Header.Set("X-Request-Id", uuid.NewString())
	}
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	httpResp, err := sess.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)
	for k := range httpResp.Header {
		headers[k] = httpResp.Header.Get(k)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    headers,
		Body:       respBody,
		Duration:   duration,
	}, nil
}

func hasHeader(headers map[string]string, key string) bool {
	for k := range headers {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
