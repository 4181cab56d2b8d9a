package commands

import (
	"errors"

	"github.com/arnavshah/camp-scheduler-api/pkg/logging"
	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/printer"
	"github.com/arnavshah/camp-scheduler-api/pkg/scheduler"
	"github.com/spf13/cobra"
)

var scheduleSeed int64

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Build the role schedule for one day",
	Long: `Assigns every active staff member a role for AM Swim, Activity 1,
Activity 2 and PM Swim. Pass --seed to reproduce an earlier run.`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().Int64Var(&scheduleSeed, "seed", 0, "Random seed (0 draws a fresh one)")
	scheduleCmd.Flags().BoolVar(&asJSON, "json", false, "Print the schedule as JSON")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	r, err := loadRoster()
	if err != nil {
		return err
	}

	rng, seed, err := scheduler.NewRandom(scheduleSeed)
	if err != nil {
		return printer.Error("Could not seed scheduler", err.Error(), nil)
	}

	s := scheduler.NewScheduler(r, rng)
	s.Logger = logging.NewWithWriter(cmd.ErrOrStderr(), logLevel)
	day, err := s.RunDay()
	if errors.Is(err, scheduler.ErrEmptyRoster) {
		return printer.Error("Roster is empty", err.Error(), []string{
			"Add staff with: camp roster set <group> <slot> <name>",
		})
	}
	if err != nil {
		return printer.Error("Could not build schedule", err.Error(), nil)
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), models.ScheduleResponse{Seed: seed, DaySchedule: *day})
	}
	printer.Schedule(cmd.OutOrStdout(), seed, day)
	return nil
}
