package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soapjira/jirasoap"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Inspect a project's components and versions",
}

var componentsCmd = &cobra.Command{
	Use:   "components <project-key>",
	Short: "List the components defined in a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		components, err := client.Components(callContext(), args[0])
		if err != nil {
			fail(err)
		}
		printEntityTable(components)
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions <project-key>",
	Short: "List the versions defined in a project",
	Long: `List the versions defined in a project. The printed ids feed the
update field ids: "versions" for affects-versions and "fixVersions" for
fix-versions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		versions, err := client.Versions(callContext(), args[0])
		if err != nil {
			fail(err)
		}
		printEntityTable(versions)
	},
}

func printEntityTable(entities []jirasoap.NamedEntity) {
	if jsonOutput {
		outputJSON(entities)
		return
	}
	if len(entities) == 0 {
		fmt.Println("(none)")
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	for _, e := range entities {
		fmt.Printf("%s  %s\n", cyan(e.ID), e.Name)
	}
}

func init() {
	projectCmd.AddCommand(componentsCmd)
	projectCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(projectCmd)
}
