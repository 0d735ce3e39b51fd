package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soapjira/jirasoap/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <jql>",
	Short: "Export matching issues to a local SQLite database",
	Long: `Run a JQL search and dump the matching issues into a local SQLite file
for offline inspection with ordinary SQL. With --worklogs, each issue's
worklogs are fetched and stored too.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dbPath, _ := cmd.Flags().GetString("db")
		maxResults, _ := cmd.Flags().GetInt("max")
		withWorklogs, _ := cmd.Flags().GetBool("worklogs")

		client := newClient()
		issues, err := client.IssuesFromJQLSearch(callContext(), args[0], maxResults)
		if err != nil {
			fail(err)
		}

		store, err := export.Open(dbPath)
		if err != nil {
			fail(err)
		}
		defer store.Close()

		if err := store.SaveIssues(issues); err != nil {
			fail(err)
		}

		var worklogCount int
		if withWorklogs {
			for _, issue := range issues {
				worklogs, err := client.Worklogs(callContext(), issue.Key)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Warning: skipping worklogs for %s: %v\n", issue.Key, err)
					continue
				}
				if err := store.SaveWorklogs(issue.Key, worklogs); err != nil {
					fail(err)
				}
				worklogCount += len(worklogs)
			}
		}

		if jsonOutput {
			result := map[string]interface{}{
				"database": dbPath,
				"issues":   len(issues),
			}
			if withWorklogs {
				result["worklogs"] = worklogCount
			}
			outputJSON(result)
			return
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Exported %d issue(s) to %s\n", green("✓"), len(issues), dbPath)
		if withWorklogs {
			fmt.Printf("  %d worklog(s)\n", worklogCount)
		}
	},
}

func init() {
	exportCmd.Flags().String("db", "jsoap-export.db", "Path of the SQLite file to write")
	exportCmd.Flags().Int("max", 500, "Maximum number of issues to export")
	exportCmd.Flags().Bool("worklogs", false, "Also fetch and store each issue's worklogs")
	rootCmd.AddCommand(exportCmd)
}
