package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/MostafaTaheri/asyncrequest/packages/request"
)

// JSONEnvelope is the machine-readable shape of one request/response pair.
type JSONEnvelope struct {
	Method     string            `json:"method"`
	URL        string            `json:"url"`
	StatusCode int               `json:"statusCode"`
	Status     string            `json:"status"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body,omitempty"`
	DurationMs int64             `json:"durationMs"`
}

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) FormatResponse(method, url string, resp *request.Response) error {
	envelope := JSONEnvelope{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Headers:    resp.Headers,
		Body:       resp.BodyString(),
		DurationMs: resp.DurationMs(),
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}
