package scheduler

import (
	"testing"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/stretchr/testify/require"
)

// keepOrder is a Random that leaves the candidate order untouched
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

// reverseOrder is a Random that reverses the candidate order
type reverseOrder struct{}

func (reverseOrder) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

type staff struct {
	name      string
	lifeguard bool
	senior    bool
}

func buildRoster(t *testing.T, onBreak models.GroupID, groups map[models.GroupID][]staff) models.Roster {
	t.Helper()
	r := models.NewRoster()
	for id, members := range groups {
		for i, m := range members {
			require.NoError(t, r.SetSlot(id, i, models.StaffMember{
				ID:                 m.name,
				Name:               m.name,
				LifeguardCertified: m.lifeguard,
				SeniorCounselor:    m.senior,
			}))
		}
	}
	require.NoError(t, r.SetOnBreak(onBreak))
	return r
}

func fullRoster(t *testing.T, onBreak models.GroupID) models.Roster {
	t.Helper()
	groups := make(map[models.GroupID][]staff)
	for gi, id := range models.Groups {
		for i := 0; i < models.SlotsPerGroup; i++ {
			groups[id] = append(groups[id], staff{
				name:      string(id) + string(rune('A'+i)),
				lifeguard: (i+gi)%3 == 0,
				senior:    i%2 == 0,
			})
		}
	}
	return buildRoster(t, onBreak, groups)
}

func unitNames(u models.Unit) []string {
	var names []string
	for _, m := range u.Members {
		names = append(names, m.Name)
	}
	return names
}

func rolesByName(p models.PeriodAssignment) map[string]string {
	out := make(map[string]string)
	for _, u := range p.Units {
		for _, a := range u.Assignments {
			out[a.Name] = a.Role
		}
	}
	return out
}

func memberNames(g models.ChoreGroup) []string {
	var names []string
	for _, m := range g.Members {
		names = append(names, m.Name)
	}
	return names
}
