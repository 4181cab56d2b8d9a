package scheduler

import (
	"log/slog"
	"math"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
)

// Scheduler handles the logic of assigning staff to roles across a day
type Scheduler struct {
	Roster models.Roster
	Random Random
	Logger *slog.Logger

	// Fairness holds the bookkeeping of the most recent RunDay call
	Fairness *FairnessState
}

// NewScheduler creates a new scheduler instance
func NewScheduler(roster models.Roster, rng Random) *Scheduler {
	return &Scheduler{
		Roster: roster,
		Random: rng,
		Logger: slog.Default(),
	}
}

// RunDay assigns roles for AM Swim, Activity 1, Activity 2 and PM Swim in that
// order, sharing one FairnessState across the four periods. ErrEmptyRoster aborts
// the run before any period is assigned.
func (s *Scheduler) RunDay() (*models.DaySchedule, error) {
	units, err := BuildUnits(s.Roster)
	if err != nil {
		return nil, err
	}

	s.Fairness = NewFairnessState()
	day := &models.DaySchedule{Units: units}
	for _, period := range models.DayPeriods {
		pa := AssignPeriod(period, units, period.Roles(), s.Fairness, s.Random)
		for _, sf := range pa.Shortfalls {
			s.logger().Warn("role under-filled",
				"period", string(period),
				"role", sf.Role,
				"required", sf.Required,
				"filled", sf.Filled,
				"reason", sf.Reason,
			)
		}
		day.Periods = append(day.Periods, pa)
	}

	day.FreeTimeCount = make(map[string]int)
	for _, u := range units {
		for _, m := range u.Members {
			day.FreeTimeCount[m.ID] = s.Fairness.FreeTimeCount[m.ID]
		}
	}
	day.FairnessScore = CalculateFairnessScore(day.FreeTimeCount)

	s.logger().Info("day scheduled", "units", len(units), "staff", len(day.FreeTimeCount))
	return day, nil
}

func (s *Scheduler) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// CalculateFairnessScore returns a percentage (0-100) representing how evenly
// free time is distributed. 100% is perfectly fair (Standard Deviation = 0).
func CalculateFairnessScore(freeTime map[string]int) float64 {
	if len(freeTime) == 0 {
		return 100.0
	}

	var sum float64
	for _, n := range freeTime {
		sum += float64(n)
	}

	if sum == 0 {
		return 100.0 // Nobody had free time, which is still even
	}

	mean := sum / float64(len(freeTime))

	var varianceSum float64
	for _, n := range freeTime {
		diff := float64(n) - mean
		varianceSum += diff * diff
	}
	variance := varianceSum / float64(len(freeTime))
	stdDev := math.Sqrt(variance)

	// 100% means SD is 0. 0% means SD is >= mean.
	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
