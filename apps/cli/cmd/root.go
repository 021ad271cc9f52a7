package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "areq <METHOD> <URL>",
	Short: "One HTTP request, synchronously.",
	Long: `areq performs a single HTTP request and prints its response.

Each invocation opens one client session, sends the request, waits for
the full response, and closes the session. Nothing is shared between
invocations.

Examples:
  areq GET https://httpbin.org/get
  areq GET https://api.example.com/items -q page=2 -H "Accept: application/json"
  areq POST https://api.example.com/items --json '{"name": "widget"}'
  areq DELETE https://api.example.com/items/7 --bearer "$TOKEN"
  areq GET https://httpbin.org/get -o json --extract headers.Host`,
	Args: cobra.ExactArgs(2),
	RunE: sendCommand,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
