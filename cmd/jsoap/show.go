package main

import (
	"fmt"

	"github.com/soapjira/jirasoap"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show a single issue",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		byID, _ := cmd.Flags().GetBool("id")
		withResolution, _ := cmd.Flags().GetBool("resolution")

		client := newClient()

		var issue *jirasoap.Issue
		var err error
		if byID {
			issue, err = client.IssueByID(callContext(), args[0])
		} else {
			issue, err = client.Issue(callContext(), args[0])
		}
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(issue)
		} else {
			printIssueDetail(issue)
		}

		if withResolution {
			resolved, err := client.ResolutionDateByKey(callContext(), issue.Key)
			if err != nil {
				fail(err)
			}
			if jsonOutput {
				outputJSON(map[string]interface{}{"key": issue.Key, "resolved": resolved})
			} else if resolved.IsZero() {
				fmt.Println("  resolved:   (unresolved)")
			} else {
				fmt.Printf("  resolved:   %s\n", resolved.Format("2006-01-02 15:04"))
			}
		}
	},
}

func init() {
	showCmd.Flags().Bool("id", false, "Treat the argument as a numeric issue id instead of a key")
	showCmd.Flags().Bool("resolution", false, "Also fetch and print the resolution date")
	rootCmd.AddCommand(showCmd)
}
