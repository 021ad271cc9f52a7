package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MostafaTaheri/asyncrequest/packages/core/config"
	"github.com/MostafaTaheri/asyncrequest/packages/output"
	"github.com/MostafaTaheri/asyncrequest/packages/request"
	"github.com/spf13/cobra"
)

var (
	headerFlags  []string
	queryFlags   []string
	dataFlag     string
	jsonFlag     string
	formFlags    []string
	timeoutFlag  string
	bearerFlag   string
	basicFlag    string
	noFollowFlag bool
	outputFlag   string
	extractFlag  string
	noColorFlag  bool
	verboseFlag  bool
	configFlag   string
)

func init() {
	rootCmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, "request header as 'Key: Value' (repeatable)")
	rootCmd.Flags().StringArrayVarP(&queryFlags, "query", "q", nil, "query parameter as key=value (repeatable)")
	rootCmd.Flags().StringVarP(&dataFlag, "data", "d", "", "raw request body")
	rootCmd.Flags().StringVar(&jsonFlag, "json", "", "JSON request body (sets Content-Type)")
	rootCmd.Flags().StringArrayVar(&formFlags, "form", nil, "form field as key=value (repeatable, url-encoded body)")
	rootCmd.Flags().StringVar(&timeoutFlag, "timeout", "", "total request timeout, e.g. 30s or 2m")
	rootCmd.Flags().StringVar(&bearerFlag, "bearer", "", "bearer token for the Authorization header")
	rootCmd.Flags().StringVar(&basicFlag, "basic", "", "basic auth credentials as user:password")
	rootCmd.Flags().BoolVar(&noFollowFlag, "no-follow", false, "do not follow redirects")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output format: console or json")
	rootCmd.Flags().StringVar(&extractFlag, "extract", "", "print only this gjson path from the response body")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print response headers")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "path to config file")
}

func sendCommand(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	method, url := args[0], args[1]

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return withCode(ExitConfigError, fmt.Errorf("load config: %w", err))
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return withCode(ExitUsageError, err)
	}

	console := output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag),
		output.WithNoColor(noColorFlag || cfg.GetNoColor()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := request.Do(ctx, method, url, opts...)
	if err != nil {
		cmd.SilenceErrors = true
		console.FormatError(method, url, err)
		return withCode(ExitNetworkError, err)
	}

	if extractFlag != "" {
		result := resp.Get(extractFlag)
		if !result.Exists() {
			return withCode(ExitUsageError, fmt.Errorf("path %q not found in response body", extractFlag))
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
	} else {
		mode := outputFlag
		if mode == "" {
			mode = cfg.Output
		}
		switch mode {
		case "json":
			formatter := output.NewJSONFormatter(cmd.OutOrStdout())
			if err := formatter.FormatResponse(method, url, resp); err != nil {
				return withCode(ExitUsageError, err)
			}
		default:
			console.FormatResponse(method, url, resp)
		}
	}

	if resp.IsClientError() || resp.IsServerError() {
		cmd.SilenceErrors = true
		return withCode(ExitHTTPError, fmt.Errorf("server returned %s", resp.Status))
	}

	return nil
}

func buildOptions(cfg *config.Config) ([]request.Option, error) {
	var opts []request.Option

	// Config defaults first so flags can override them.
	if len(cfg.Headers) > 0 {
		opts = append(opts, request.WithHeaders(cfg.Headers))
	}
	if token := cfg.BearerToken(); token != "" {
		opts = append(opts, request.WithBearerToken(token))
	}
	if !cfg.GetFollowRedirects() {
		opts = append(opts, request.WithFollowRedirects(false))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, request.WithTimeout(time.Duration(cfg.Timeout)*time.Millisecond))
	}

	for _, h := range headerFlags {
		key, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q: expected 'Key: Value'", h)
		}
		opts = append(opts, request.WithHeader(strings.TrimSpace(key), strings.TrimSpace(value)))
	}

	for _, q := range queryFlags {
		key, value, ok := strings.Cut(q, "=")
		if !ok {
			return nil, fmt.Errorf("invalid query parameter %q: expected key=value", q)
		}
		opts = append(opts, request.WithQueryParam(key, value))
	}

	bodyFlags := 0
	if dataFlag != "" {
		bodyFlags++
		opts = append(opts, request.WithBody([]byte(dataFlag)))
	}
	if jsonFlag != "" {
		bodyFlags++
		if !json.Valid([]byte(jsonFlag)) {
			return nil, fmt.Errorf("--json value is not valid JSON")
		}
		opts = append(opts,
			request.WithBody([]byte(jsonFlag)),
			request.WithHeader("Content-Type", "application/json"),
		)
	}
	if len(formFlags) > 0 {
		bodyFlags++
		form := make(map[string]string, len(formFlags))
		for _, f := range formFlags {
			key, value, ok := strings.Cut(f, "=")
			if !ok {
				return nil, fmt.Errorf("invalid form field %q: expected key=value", f)
			}
			form[key] = value
		}
		opts = append(opts, request.WithForm(form))
	}
	if bodyFlags > 1 {
		return nil, fmt.Errorf("--data, --json and --form are mutually exclusive")
	}

	if timeoutFlag != "" {
		d, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", timeoutFlag, err)
		}
		opts = append(opts, request.WithTimeout(d))
	}

	if bearerFlag != "" {
		opts = append(opts, request.WithBearerToken(bearerFlag))
	}
	if basicFlag != "" {
		user, pass, ok := strings.Cut(basicFlag, ":")
		if !ok {
			return nil, fmt.Errorf("invalid basic credentials: expected user:password")
		}
		opts = append(opts, request.WithBasicAuth(user, pass))
	}

	if noFollowFlag {
		opts = append(opts, request.WithFollowRedirects(false))
	}

	return opts, nil
}
