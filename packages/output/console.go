package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/MostafaTaheri/asyncrequest/packages/request"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResponse(method, url string, resp *request.Response) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	statusColor := green
	switch {
	case resp.IsRedirect():
		statusColor = yellow
	case resp.IsClientError(), resp.IsServerError():
		statusColor = red
	}

	fmt.Fprintf(f.writer, "%s %s\n", bold(method), url)
	fmt.Fprintf(f.writer, "%s %s\n", statusColor(resp.Status), cyan(fmt.Sprintf("(%dms)", resp.DurationMs())))

	if f.verbose {
		keys := make([]string, 0, len(resp.Headers))
		for k := range resp.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(f.writer, "  %s: %s\n", cyan(k), resp.Headers[k])
		}
	}

	if len(resp.Body) == 0 {
		return
	}

	fmt.Fprintf(f.writer, "\n%s\n", f.renderBody(resp))
}

// renderBody pretty-prints JSON bodies and passes everything else through.
func (f *ConsoleFormatter) renderBody(resp *request.Response) string {
	if !resp.IsJSON() {
		return resp.BodyString()
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Body, "", "  "); err != nil {
		return resp.BodyString()
	}
	return buf.String()
}

// FormatError prints a transport-level failure.
func (f *ConsoleFormatter) FormatError(method, url string, err error) {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", bold(method), url)
	fmt.Fprintf(f.writer, "%s %v\n", red("error:"), err)
}
