package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions <key>",
	Short: "List the workflow actions available on an issue",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		actions, err := client.AvailableActions(callContext(), args[0])
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(actions)
			return
		}
		if len(actions) == 0 {
			fmt.Println("No workflow actions available")
			return
		}
		cyan := color.New(color.FgCyan).SprintFunc()
		for _, action := range actions {
			fmt.Printf("%s  %s\n", cyan(action.ID), action.Name)
		}
	},
}

var transitionCmd = &cobra.Command{
	Use:   "transition <key> <action-id>",
	Short: "Progress an issue through a workflow action",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rawFields, _ := cmd.Flags().GetStringArray("field")
		fields, err := parseFieldFlags(rawFields)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		client := newClient()
		issue, err := client.ProgressWorkflowAction(callContext(), args[0], args[1], fields)
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(issue)
		} else {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s %s is now in status %s\n", green("✓"), issue.Key, issue.Status)
		}
	},
}

func init() {
	transitionCmd.Flags().StringArrayP("field", "f", nil, "Field to set during the transition, as id=value (repeatable)")
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(transitionCmd)
}
