package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soapjira/jirasoap"
	"github.com/soapjira/jirasoap/internal/config"
	"github.com/soapjira/jirasoap/internal/tracelog"
)

var (
	serverURL    string
	token        string
	jsonOutput   bool
	timeout      time.Duration
	traceLogPath string

	traceLogger *tracelog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jsoap",
	Short: "jsoap - client for the legacy issue tracker SOAP interface",
	Long:  `Query and update issues on a legacy issue-tracking server over its SOAP RPC interface (jirasoapservice-v2).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Apply viper configuration if flags weren't explicitly set
		// Priority: flags > config file + env vars > defaults
		if !cmd.Flags().Changed("url") {
			serverURL = config.GetString("url")
		}
		if !cmd.Flags().Changed("token") {
			token = config.GetString("token")
		}
		if !cmd.Flags().Changed("json") {
			jsonOutput = config.GetBool("json")
		}
		if !cmd.Flags().Changed("timeout") {
			if d := config.GetDuration("timeout"); d > 0 {
				timeout = d
			}
		}
		if !cmd.Flags().Changed("trace-log") {
			traceLogPath = config.GetString("trace-log")
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if traceLogger != nil {
			_ = traceLogger.Close()
			traceLogger = nil
		}
	},
}

// newClient builds a library client from the resolved configuration.
// Exits with a usage error when no server URL is configured.
func newClient() *jirasoap.Client {
	if serverURL == "" {
		fmt.Fprintf(os.Stderr, "Error: no server URL configured (use --url, JSOAP_URL, or a .jsoap/config.yaml)\n")
		os.Exit(1)
	}

	opts := []jirasoap.Option{
		jirasoap.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if traceLogPath != "" {
		traceLogger = tracelog.New(traceLogPath)
		opts = append(opts, jirasoap.WithTrace(traceLogger.Record))
	}

	return jirasoap.NewClient(serverURL, token, opts...)
}

// callContext returns the context for one remote call. The HTTP client
// already enforces the timeout; this exists so Ctrl-C style cancellation
// has a single place to hook into later.
func callContext() context.Context {
	return context.Background()
}

// outputJSON outputs data as pretty-printed JSON
func outputJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// fail prints a remote call error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func init() {
	// Initialize viper configuration
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "url", "", "Server base URL (default: $JSOAP_URL or config file)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Session token passed to every remote call (default: $JSOAP_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout per remote call")
	rootCmd.PersistentFlags().StringVar(&traceLogPath, "trace-log", "", "Append SOAP wire traffic to this rotating log file")
}

func main() {
	// Handle --version flag (in addition to 'version' subcommand)
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("jsoap version %s (%s)\n", Version, Build)
			return
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
