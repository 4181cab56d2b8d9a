// Package printer renders rosters, schedules and chore groups for the terminal.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	faint  = color.New(color.Faint)
)

// Success prints a green message with a checkmark prefix
func Success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a yellow message with a warning prefix
func Warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "⚠️  %s\n", fmt.Sprintf(format, a...))
}

// Error prints a titled error with suggestions to stderr and returns an error
// carrying only the title, for commands that silence cobra's own output.
func Error(title, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "%s\n", explanation)
	}
	if len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		for _, s := range suggestions {
			fmt.Fprintf(os.Stderr, "  - %s\n", s)
		}
	}
	return fmt.Errorf("%s", title)
}

// Roster prints each day-off group with its fill count
func Roster(w io.Writer, view models.RosterView) {
	for _, g := range view.Groups {
		title := fmt.Sprintf("%s (%s)", strings.ToUpper(string(g.ID)), g.Count)
		if g.OnBreak {
			title += " on break"
		}
		cyan.Fprintln(w, title)
		for i, s := range g.Slots {
			if s == nil {
				faint.Fprintf(w, "  %d. -\n", i+1)
				continue
			}
			fmt.Fprintf(w, "  %d. %s%s\n", i+1, s.Name, tags(s.LifeguardCertified, s.SeniorCounselor))
		}
	}
	fmt.Fprintf(w, "%d staff\n", view.StaffCount)
}

// Schedule prints each period unit by unit, followed by any shortfalls
func Schedule(w io.Writer, seed int64, day *models.DaySchedule) {
	for _, p := range day.Periods {
		cyan.Fprintln(w, string(p.Period))
		for _, u := range p.Units {
			fmt.Fprintf(w, "  Unit %d\n", u.UnitNumber)
			for _, a := range u.Assignments {
				line := fmt.Sprintf("    %-12s %s", a.Name, a.Role)
				if a.Role == models.RoleNotAssigned {
					faint.Fprintln(w, line)
					continue
				}
				fmt.Fprintln(w, line)
			}
		}
		for _, sf := range p.Shortfalls {
			Warning(w, "%s filled %d/%d (%s)", sf.Role, sf.Filled, sf.Required, sf.Reason)
		}
	}
	fmt.Fprintf(w, "seed %d, fairness %.1f%%\n", seed, day.FairnessScore)
}

// Chores prints the chore groups and flags any without a senior counselor
func Chores(w io.Writer, groups []models.ChoreGroup, warnings []models.CoverageWarning) {
	for _, g := range groups {
		cyan.Fprintf(w, "Chore group %d\n", g.Number)
		for _, m := range g.Members {
			fmt.Fprintf(w, "  %-12s %s%s\n", m.Name, m.Origin, tags(false, m.SeniorCounselor))
		}
	}
	for _, cw := range warnings {
		Warning(w, "%s", cw.Message)
	}
	if len(warnings) == 0 {
		Success(w, "every chore group has a senior counselor")
	}
}

func tags(lifeguard, senior bool) string {
	var t []string
	if lifeguard {
		t = append(t, "lifeguard")
	}
	if senior {
		t = append(t, "senior")
	}
	if len(t) == 0 {
		return ""
	}
	return " [" + strings.Join(t, ", ") + "]"
}
