package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/soapjira/jirasoap"
)

// printIssueLine prints the one-line form used by search and filter
// listings.
func printIssueLine(issue jirasoap.Issue) {
	cyan := color.New(color.FgCyan).SprintFunc()
	line := fmt.Sprintf("%s  %s", cyan(issue.Key), issue.Summary)
	if issue.Assignee != "" {
		line += color.New(color.Faint).Sprintf("  (%s)", issue.Assignee)
	}
	fmt.Println(line)
}

// printIssueDetail prints the full record.
func printIssueDetail(issue *jirasoap.Issue) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Printf("%s  %s\n", cyan(issue.Key), issue.Summary)
	fmt.Printf("  id:         %s\n", issue.ID)
	fmt.Printf("  project:    %s\n", issue.Project)
	fmt.Printf("  type:       %s  status: %s  priority: %s\n", issue.Type, issue.Status, issue.Priority)
	if issue.Resolution != "" {
		fmt.Printf("  resolution: %s\n", issue.Resolution)
	}
	fmt.Printf("  reporter:   %s  assignee: %s\n", issue.Reporter, issue.Assignee)
	if !issue.Created.IsZero() {
		fmt.Printf("  created:    %s\n", issue.Created.Format("2006-01-02 15:04"))
	}
	if !issue.Updated.IsZero() {
		fmt.Printf("  updated:    %s\n", issue.Updated.Format("2006-01-02 15:04"))
	}
	if !issue.DueDate.IsZero() {
		fmt.Printf("  due:        %s\n", issue.DueDate.Format("2006-01-02"))
	}
	printNamedList("components", issue.Components)
	printNamedList("affects", issue.AffectsVersions)
	printNamedList("fix", issue.FixVersions)
	for _, cf := range issue.CustomFieldValues {
		fmt.Printf("  %s: %v\n", cf.CustomfieldID, cf.Values)
	}
	if issue.Description != "" {
		fmt.Printf("\n%s\n", issue.Description)
	}
}

func printNamedList(label string, entities []jirasoap.NamedEntity) {
	if len(entities) == 0 {
		return
	}
	fmt.Printf("  %s:", label)
	for _, e := range entities {
		fmt.Printf(" %s", e.Name)
	}
	fmt.Println()
}
