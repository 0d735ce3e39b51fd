package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soapjira/jirasoap"
)

// parseFieldFlags turns repeated id=value flags into FieldValues. Repeating
// the same id accumulates values, which is how collection fields
// (components, versions) take multiple members.
func parseFieldFlags(raw []string) ([]jirasoap.FieldValue, error) {
	byID := make(map[string]*jirasoap.FieldValue)
	order := make([]string, 0, len(raw))
	for _, item := range raw {
		id, value, ok := strings.Cut(item, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid field %q (want id=value)", item)
		}
		if existing, seen := byID[id]; seen {
			existing.Values = append(existing.Values, value)
			continue
		}
		byID[id] = &jirasoap.FieldValue{ID: id, Values: []string{value}}
		order = append(order, id)
	}

	fields := make([]jirasoap.FieldValue, 0, len(order))
	for _, id := range order {
		fields = append(fields, *byID[id])
	}
	return fields, nil
}

var updateCmd = &cobra.Command{
	Use:   "update <key>",
	Short: "Apply a partial update to an issue",
	Long: `Apply a partial update to an issue via field id/value pairs.

Note that the server silently ignores unrecognized field ids, and that the
affects-versions collection updates under the id "versions" (not
"affectsVersions"); use --affects-version to avoid remembering that.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rawFields, _ := cmd.Flags().GetStringArray("field")
		affectsVersions, _ := cmd.Flags().GetStringSlice("affects-version")
		fixVersions, _ := cmd.Flags().GetStringSlice("fix-version")

		fields, err := parseFieldFlags(rawFields)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(affectsVersions) > 0 {
			fields = append(fields, jirasoap.FieldValue{ID: jirasoap.FieldAffectsVersions, Values: affectsVersions})
		}
		if len(fixVersions) > 0 {
			fields = append(fields, jirasoap.FieldValue{ID: jirasoap.FieldFixVersions, Values: fixVersions})
		}
		if len(fields) == 0 {
			fmt.Fprintf(os.Stderr, "Error: nothing to update (use --field, --affects-version or --fix-version)\n")
			os.Exit(1)
		}

		client := newClient()
		updated, err := client.UpdateIssue(callContext(), args[0], fields)
		if err != nil {
			fail(err)
		}

		if jsonOutput {
			outputJSON(updated)
		} else {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s Updated issue %s\n", green("✓"), updated.Key)
		}
	},
}

func init() {
	updateCmd.Flags().StringArrayP("field", "f", nil, "Field update as id=value (repeatable; repeated ids accumulate values)")
	updateCmd.Flags().StringSlice("affects-version", nil, "Affects-version ids to set (sent under field id \"versions\")")
	updateCmd.Flags().StringSlice("fix-version", nil, "Fix-version ids to set")
	rootCmd.AddCommand(updateCmd)
}
