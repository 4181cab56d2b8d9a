package commands

import (
	"errors"
	"fmt"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/printer"
	"github.com/arnavshah/camp-scheduler-api/pkg/scheduler"
	"github.com/spf13/cobra"
)

var choreGroupCount int

var choresCmd = &cobra.Command{
	Use:   "chores",
	Short: "Split the roster into chore groups",
	Long: `Deals staff into chore groups slot by slot, then moves senior
counselors so that every group has one where the roster allows it.`,
	Args: cobra.NoArgs,
	RunE: runChores,
}

func init() {
	choresCmd.Flags().IntVarP(&choreGroupCount, "groups", "g", 0, "Number of chore groups (0 uses the largest day-off group size)")
	choresCmd.Flags().BoolVar(&asJSON, "json", false, "Print the chore groups as JSON")
	rootCmd.AddCommand(choresCmd)
}

func runChores(cmd *cobra.Command, args []string) error {
	if choreGroupCount < 0 {
		return printer.Error("Invalid group count", "--groups must not be negative.", nil)
	}

	r, err := loadRoster()
	if err != nil {
		return err
	}

	groups, warnings, err := scheduler.BuildRepairedChoreGroups(r, choreGroupCount)
	if errors.Is(err, scheduler.ErrEmptyRoster) {
		return printer.Error("Roster is empty", err.Error(), nil)
	}
	if errors.Is(err, scheduler.ErrTooManyChoreGroups) {
		return printer.Error("Too many chore groups", err.Error(), []string{
			fmt.Sprintf("Pass --groups %d or fewer", r.StaffCount()),
		})
	}
	if err != nil {
		return printer.Error("Could not build chore groups", err.Error(), nil)
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), models.ChoreResponse{Groups: groups, Warnings: warnings})
	}
	printer.Chores(cmd.OutOrStdout(), groups, warnings)
	return nil
}
