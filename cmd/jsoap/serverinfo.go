package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// minServerVersion is the oldest server release whose SOAP field layout
// this client maps. Older builds lack the worklog methods entirely.
const minServerVersion = "v3.10.0"

// serverVersionSupported reports whether a server version string like
// "3.13.5" is at or above the minimum supported release. Unparseable
// versions count as supported; the warning exists for the common case,
// not as a gate.
func serverVersionSupported(version string) bool {
	v := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(v) {
		return true
	}
	return semver.Compare(v, minServerVersion) >= 0
}

var serverInfoCmd = &cobra.Command{
	Use:   "server-info",
	Short: "Show the remote server's version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		info, err := client.ServerInfo(callContext())
		if err != nil {
			fail(err)
		}

		supported := serverVersionSupported(info.Version)

		if jsonOutput {
			outputJSON(map[string]interface{}{
				"baseUrl":     info.BaseURL,
				"version":     info.Version,
				"buildNumber": info.BuildNumber,
				"buildDate":   info.BuildDate,
				"edition":     info.Edition,
				"supported":   supported,
			})
			return
		}

		fmt.Printf("%s %s (build %s)\n", info.Edition, info.Version, info.BuildNumber)
		if !info.BuildDate.IsZero() {
			fmt.Printf("  built: %s\n", info.BuildDate.Format("2006-01-02"))
		}
		fmt.Printf("  url:   %s\n", info.BaseURL)
		if !supported {
			yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
			fmt.Fprintf(os.Stderr, "%s server %s predates %s; worklog and JQL methods may be missing\n",
				yellow("Warning:"), info.Version, strings.TrimPrefix(minServerVersion, "v"))
		}
	},
}

func init() {
	rootCmd.AddCommand(serverInfoCmd)
}
