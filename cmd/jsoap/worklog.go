package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soapjira/jirasoap"
)

// parseTimeFlag parses time strings in multiple formats
func parseTimeFlag(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse time %q (try formats: 2006-01-02, 2006-01-02T15:04:05, or RFC3339)", s)
}

var worklogCmd = &cobra.Command{
	Use:   "worklog",
	Short: "List or record worklogs on an issue",
}

var worklogListCmd = &cobra.Command{
	Use:   "list <key>",
	Short: "List the worklogs recorded against an issue",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		worklogs, err := client.Worklogs(callContext(), args[0])
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(worklogs)
			return
		}

		var total int64
		for _, worklog := range worklogs {
			fmt.Printf("%s  %s  %s  %s\n",
				worklog.StartDate.Format("2006-01-02 15:04"),
				worklog.Author,
				worklog.TimeSpent,
				worklog.Comment)
			total += worklog.TimeSpentInSeconds
		}
		fmt.Printf("\n%d worklog(s), %s total\n", len(worklogs), (time.Duration(total) * time.Second).String())
	},
}

var worklogAddCmd = &cobra.Command{
	Use:   "add <key>",
	Short: "Record a worklog and auto-adjust the remaining estimate",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		timeSpent, _ := cmd.Flags().GetString("time")
		comment, _ := cmd.Flags().GetString("comment")
		startedStr, _ := cmd.Flags().GetString("started")

		if timeSpent == "" {
			fmt.Fprintf(os.Stderr, "Error: --time is required (server format, e.g. \"2h 30m\")\n")
			os.Exit(1)
		}

		started := time.Now()
		if startedStr != "" {
			var err error
			started, err = parseTimeFlag(startedStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		worklog := &jirasoap.Worklog{
			Comment:   comment,
			StartDate: jirasoap.NewTime(started),
			TimeSpent: timeSpent,
		}

		client := newClient()
		stored, err := client.AddWorklogAndAutoAdjustRemainingEstimate(callContext(), args[0], worklog)
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(stored)
		} else {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s Logged %s against %s\n", green("✓"), stored.TimeSpent, args[0])
		}
	},
}

func init() {
	worklogAddCmd.Flags().StringP("time", "t", "", "Time spent, in the server's duration format (required)")
	worklogAddCmd.Flags().StringP("comment", "c", "", "Worklog comment")
	worklogAddCmd.Flags().String("started", "", "When the work started (default: now)")
	worklogCmd.AddCommand(worklogListCmd)
	worklogCmd.AddCommand(worklogAddCmd)
	rootCmd.AddCommand(worklogCmd)
}
