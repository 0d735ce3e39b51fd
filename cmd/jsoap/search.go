package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <jql>",
	Short: "Search issues with a JQL query",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxResults, _ := cmd.Flags().GetInt("max")

		client := newClient()
		issues, err := client.IssuesFromJQLSearch(callContext(), args[0], maxResults)
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(issues)
			return
		}
		for _, issue := range issues {
			printIssueLine(issue)
		}
		fmt.Printf("\n%d issue(s)\n", len(issues))
	},
}

func init() {
	searchCmd.Flags().Int("max", 50, "Maximum number of issues to return (large result sets risk server timeouts)")
	rootCmd.AddCommand(searchCmd)
}
