package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   bool
	}{
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{300, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.statusCode}
		assert.Equal(t, tt.expected, resp.IsSuccess(), "StatusCode: %d", tt.statusCode)
	}
}

func TestResponse_StatusClasses(t *testing.T) {
	resp := &Response{StatusCode: 302}
	assert.True(t, resp.IsRedirect())
	assert.False(t, resp.IsClientError())

	resp = &Response{StatusCode: 404}
	assert.True(t, resp.IsClientError())
	assert.False(t, resp.IsServerError())

	resp = &Response{StatusCode: 503}
	assert.True(t, resp.IsServerError())
}

func TestResponse_Header(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "text/html"}}

	assert.Equal(t, "text/html", resp.Header("content-type"))
	assert.Equal(t, "", resp.Header("X-Missing"))
}

func TestResponse_IsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html", false},
		{"", false},
	}

	for _, tt := range tests {
		resp := &Response{Headers: map[string]string{"Content-Type": tt.contentType}}
		assert.Equal(t, tt.expected, resp.IsJSON(), "Content-Type: %s", tt.contentType)
	}
}

func TestResponse_BodyJSON(t *testing.T) {
	resp := &Response{Body: []byte(`{"name": "test", "count": 3}`)}

	v, err := resp.BodyJSON()
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(3), m["count"])
}

func TestResponse_BodyJSON_Invalid(t *testing.T) {
	resp := &Response{Body: []byte(`not json`)}

	_, err := resp.BodyJSON()
	assert.Error(t, err)
}

func TestResponse_Get(t *testing.T) {
	resp := &Response{Body: []byte(`{"user": {"id": 7, "tags": ["a", "b"]}}`)}

	assert.Equal(t, int64(7), resp.Get("user.id").Int())
	assert.Equal(t, "b", resp.Get("user.tags.1").String())
	assert.False(t, resp.Get("user.missing").Exists())
}

func TestResponse_DurationMs(t *testing.T) {
	resp := &Response{Duration: 1500 * time.Millisecond}
	assert.Equal(t, int64(1500), resp.DurationMs())
}
