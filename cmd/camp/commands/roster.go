package commands

import (
	"fmt"
	"strconv"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/printer"
	"github.com/arnavshah/camp-scheduler-api/pkg/roster"
	"github.com/spf13/cobra"
)

var (
	slotLifeguard bool
	slotSenior    bool
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Show or edit the roster file",
}

var rosterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every day-off group with its fill count",
	Args:  cobra.NoArgs,
	RunE:  runRosterShow,
}

var rosterSetCmd = &cobra.Command{
	Use:   "set <group> <slot> <name>",
	Short: "Put a staff member in a slot (slots are 1-6)",
	Long: `Stores a staff member in one slot of a day-off group. Surrounding
whitespace is trimmed from the name and a blank name clears the slot.`,
	Args: cobra.ExactArgs(3),
	RunE: runRosterSet,
}

var rosterClearCmd = &cobra.Command{
	Use:   "clear [<group> <slot>]",
	Short: "Clear one slot, or the whole roster when no slot is given",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or <group> <slot>, got %d", len(args))
		}
		return nil
	},
	RunE: runRosterClear,
}

var rosterBreakCmd = &cobra.Command{
	Use:   "break <group|none>",
	Short: "Mark the group on break, or none",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterBreak,
}

func init() {
	rosterSetCmd.Flags().BoolVar(&slotLifeguard, "lifeguard", false, "Staff member is lifeguard certified")
	rosterSetCmd.Flags().BoolVar(&slotSenior, "senior", false, "Staff member is a senior counselor")

	rosterCmd.AddCommand(rosterShowCmd, rosterSetCmd, rosterClearCmd, rosterBreakCmd)
	rootCmd.AddCommand(rosterCmd)
}

func runRosterShow(cmd *cobra.Command, args []string) error {
	r, err := loadRoster()
	if err != nil {
		return err
	}
	printer.Roster(cmd.OutOrStdout(), roster.View(r))
	return nil
}

func runRosterSet(cmd *cobra.Command, args []string) error {
	group, slot, err := parseSlotArgs(args[0], args[1])
	if err != nil {
		return err
	}

	r, err := loadOrCreateRoster()
	if err != nil {
		return err
	}

	member := models.StaffMember{
		Name:               args[2],
		LifeguardCertified: slotLifeguard,
		SeniorCounselor:    slotSenior,
	}
	if err := r.SetSlot(group, slot, member); err != nil {
		return printer.Error("Could not set slot", err.Error(), nil)
	}
	if err := save(r); err != nil {
		return err
	}

	g, _ := r.Group(group)
	printer.Success(cmd.OutOrStdout(), "%s %d/%d", group, g.FilledCount(), models.SlotsPerGroup)
	return nil
}

func runRosterClear(cmd *cobra.Command, args []string) error {
	r, err := loadOrCreateRoster()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		r.ClearAll()
	} else {
		group, slot, err := parseSlotArgs(args[0], args[1])
		if err != nil {
			return err
		}
		if err := r.ClearSlot(group, slot); err != nil {
			return printer.Error("Could not clear slot", err.Error(), nil)
		}
	}
	if err := save(r); err != nil {
		return err
	}

	printer.Success(cmd.OutOrStdout(), "%d staff on the roster", r.StaffCount())
	return nil
}

func runRosterBreak(cmd *cobra.Command, args []string) error {
	var group models.GroupID
	if args[0] != "none" {
		var err error
		if group, err = models.ParseGroupID(args[0]); err != nil {
			return printer.Error("Unknown group", err.Error(), []string{"Use red, blue, orange, green or none"})
		}
	}

	r, err := loadOrCreateRoster()
	if err != nil {
		return err
	}
	if err := r.SetOnBreak(group); err != nil {
		return printer.Error("Could not set break", err.Error(), nil)
	}
	if err := save(r); err != nil {
		return err
	}

	if group == "" {
		printer.Success(cmd.OutOrStdout(), "no group on break")
	} else {
		printer.Success(cmd.OutOrStdout(), "%s on break", group)
	}
	return nil
}

// parseSlotArgs converts a group name and a 1-based slot number
func parseSlotArgs(groupArg, slotArg string) (models.GroupID, int, error) {
	group, err := models.ParseGroupID(groupArg)
	if err != nil {
		return "", 0, printer.Error("Unknown group", err.Error(), []string{"Use red, blue, orange or green"})
	}
	n, err := strconv.Atoi(slotArg)
	if err != nil || n < 1 || n > models.SlotsPerGroup {
		return "", 0, printer.Error("Invalid slot", fmt.Sprintf("Slot must be a number from 1 to %d, got %q.", models.SlotsPerGroup, slotArg), nil)
	}
	return group, n - 1, nil
}

func save(r models.Roster) error {
	if err := roster.SaveFile(rosterPath, r); err != nil {
		return printer.Error("Could not write roster", err.Error(), nil)
	}
	return nil
}
