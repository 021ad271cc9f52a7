package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCall_Defaults(t *testing.T) {
	c := newCall("get", "http://example.com")

	assert.Equal(t, "GET", c.method)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.True(t, c.followRedirects)
	assert.Empty(t, c.headers)
}

func TestCall_BuildURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		query    map[string]string
		expected string
	}{
		{
			name:     "no params",
			url:      "http://example.com/path",
			query:    nil,
			expected: "http://example.com/path",
		},
		{
			name:     "single param",
			url:      "http://example.com/path",
			query:    map[string]string{"q": "go"},
			expected: "http://example.com/path?q=go",
		},
		{
			name:     "merges with existing query",
			url:      "http://example.com/path?sort=asc",
			query:    map[string]string{"page": "2"},
			expected: "http://example.com/path?page=2&sort=asc",
		},
		{
			name:     "encodes values",
			url:      "http://example.com",
			query:    map[string]string{"q": "a b"},
			expected: "http://example.com?q=a+b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCall("GET", tt.url, WithQueryParams(tt.query))
			assert.Equal(t, tt.expected, c.buildURL())
		})
	}
}

func TestOptions_Headers(t *testing.T) {
	c := newCall("GET", "http://example.com",
		WithHeaders(map[string]string{"A": "1", "B": "2"}),
		WithHeader("B", "3"),
	)

	assert.Equal(t, "1", c.headers["A"])
	assert.Equal(t, "3", c.headers["B"])
}

func TestOptions_BasicAuth(t *testing.T) {
	c := newCall("GET", "http://example.com", WithBasicAuth("user", "pass"))

	// base64("user:pass")
	assert.Equal(t, "Basic dXNlcjpwYXNz", c.headers["Authorization"])
}

func TestOptions_JSONMarshalError(t *testing.T) {
	c := newCall("POST", "http://example.com", WithJSON(func() {}))

	require.Error(t, c.bodyErr)
	assert.Contains(t, c.bodyErr.Error(), "marshal json body")
}

func TestOptions_JSONKeepsExplicitContentType(t *testing.T) {
	c := newCall("POST", "http://example.com",
		WithHeader("Content-Type", "application/vnd.api+json"),
		WithJSON(map[string]string{"k": "v"}),
	)

	assert.Equal(t, "application/vnd.api+json", c.headers["Content-Type"])
}

func TestOptions_Timeout(t *testing.T) {
	c := newCall("GET", "http://example.com", WithTimeout(5*time.Second))

	assert.Equal(t, 5*time.Second, c.timeout)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid http URL",
			url:     "http://example.com/path",
			wantErr: false,
		},
		{
			name:    "valid https URL",
			url:     "https://example.com/path",
			wantErr: false,
		},
		{
			name:    "invalid scheme",
			url:     "ftp://example.com",
			wantErr: true,
			errMsg:  "unsupported URL scheme",
		},
		{
			name:    "missing scheme",
			url:     "example.com/path",
			wantErr: true,
			errMsg:  "unsupported URL scheme",
		},
		{
			name:    "missing host",
			url:     "http:///path",
			wantErr: true,
			errMsg:  "URL must have a host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
