package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soapjira/jirasoap"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new issue",
	Run: func(cmd *cobra.Command, args []string) {
		project, _ := cmd.Flags().GetString("project")
		issueType, _ := cmd.Flags().GetString("type")
		summary, _ := cmd.Flags().GetString("summary")
		description, _ := cmd.Flags().GetString("description")
		assignee, _ := cmd.Flags().GetString("assignee")
		priority, _ := cmd.Flags().GetString("priority")
		parentKey, _ := cmd.Flags().GetString("parent")

		if project == "" || summary == "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: --project and --summary are required\n")
			cmd.Usage()
			return
		}

		issue := &jirasoap.Issue{
			Project:     project,
			Type:        issueType,
			Summary:     summary,
			Description: description,
			Assignee:    assignee,
			Priority:    priority,
		}

		client := newClient()
		var created *jirasoap.Issue
		var err error
		if parentKey != "" {
			created, err = client.CreateIssueWithParent(callContext(), issue, parentKey)
		} else {
			created, err = client.CreateIssue(callContext(), issue)
		}
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(created)
		} else {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s Created issue %s\n", green("✓"), created.Key)
		}
	},
}

func init() {
	createCmd.Flags().StringP("project", "p", "", "Project key (required)")
	createCmd.Flags().StringP("type", "t", "1", "Issue type id")
	createCmd.Flags().StringP("summary", "s", "", "Issue summary (required)")
	createCmd.Flags().StringP("description", "d", "", "Issue description")
	createCmd.Flags().StringP("assignee", "a", "", "Assignee username")
	createCmd.Flags().String("priority", "", "Priority id")
	createCmd.Flags().String("parent", "", "Create as a sub-task of this issue key")
	rootCmd.AddCommand(createCmd)
}
