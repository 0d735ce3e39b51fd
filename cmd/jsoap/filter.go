package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter <filter-id>",
	Short: "List a page of the issues matched by a saved filter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		offset, _ := cmd.Flags().GetInt("offset")
		maxResults, _ := cmd.Flags().GetInt("max")

		client := newClient()
		issues, err := client.IssuesFromFilterWithLimit(callContext(), args[0], offset, maxResults)
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
		fmt.Printf("\n%d issue(s) from offset %d\n", len(issues), offset)
	},
}

func init() {
	filterCmd.Flags().Int("offset", 0, "Index of the first issue to return")
	filterCmd.Flags().Int("max", 50, "Maximum number of issues to return")
	rootCmd.AddCommand(filterCmd)
}
