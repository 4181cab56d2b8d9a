package scheduler

import (
	"testing"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleUnits(t *testing.T) []models.Unit {
	t.Helper()
	roster := buildRoster(t, models.GroupGreen, map[models.GroupID][]staff{
		models.GroupRed:    {{name: "A", senior: true}, {name: "B"}},
		models.GroupBlue:   {{name: "C", senior: true}, {name: "D"}},
		models.GroupOrange: {{name: "E"}},
	})
	units, err := BuildUnits(roster)
	require.NoError(t, err)
	return units
}

func TestAssignPeriod_UncertifiedLifeguardAndFreeTime(t *testing.T) {
	units := exampleUnits(t)
	reqs := []models.RoleRequirement{
		{Role: models.RoleLifeguard, Count: 1, RequiresLifeguard: true},
		{Role: models.RoleFreeTime, Count: 4, BalancesFreeTime: true},
	}
	fairness := NewFairnessState()

	pa := AssignPeriod(models.PeriodAMSwim, units, reqs, fairness, keepOrder{})

	require.Len(t, pa.Shortfalls, 1)
	assert.Equal(t, models.RoleShortfall{
		Role:     models.RoleLifeguard,
		Required: 1,
		Filled:   0,
		Reason:   models.ReasonInsufficientCertifiedStaff,
	}, pa.Shortfalls[0])

	assert.Equal(t, map[string]string{
		"A": models.RoleFreeTime,
		"C": models.RoleFreeTime,
		"E": models.RoleFreeTime,
		"B": models.RoleFreeTime,
		"D": models.RoleNotAssigned,
	}, rolesByName(pa))
	assert.Equal(t, []string{"D"}, pa.NotAssigned)
	assert.Equal(t, 1, fairness.FreeTimeCount["A"])
	assert.Equal(t, 0, fairness.FreeTimeCount["D"])
}

func TestAssignPeriod_ShuffleDecidesFreeTimeTies(t *testing.T) {
	units := exampleUnits(t)
	reqs := []models.RoleRequirement{{Role: models.RoleFreeTime, Count: 4, BalancesFreeTime: true}}

	pa := AssignPeriod(models.PeriodAMSwim, units, reqs, NewFairnessState(), reverseOrder{})

	// pool order A C E B D reversed is D B E C A
	assert.Equal(t, []string{"A"}, pa.NotAssigned)
}

func TestAssignPeriod_UnitProjection(t *testing.T) {
	units := exampleUnits(t)

	pa := AssignPeriod(models.PeriodAMSwim, units, models.SwimRoles(), NewFairnessState(), keepOrder{})

	require.Len(t, pa.Units, 2)
	assert.Equal(t, 1, pa.Units[0].UnitNumber)
	assert.Equal(t, 2, pa.Units[1].UnitNumber)
	assert.Equal(t, "A", pa.Units[0].Assignments[0].Name)
	assert.Equal(t, models.GroupRed, pa.Units[0].Assignments[0].Group)

	assert.Equal(t, map[string]string{
		"A": models.RoleWatchers,
		"C": models.RoleWatchers,
		"E": models.RoleBongo,
		"B": models.RoleMedicalTent,
		"D": models.RoleTrailSweeper,
	}, rolesByName(pa))
	assert.Empty(t, pa.NotAssigned)

	var reasons []string
	for _, sf := range pa.Shortfalls {
		reasons = append(reasons, sf.Role+":"+sf.Reason)
	}
	assert.Equal(t, []string{
		models.RoleLifeguard + ":" + models.ReasonInsufficientCertifiedStaff,
		models.RoleFreeTime + ":" + models.ReasonPoolExhausted,
	}, reasons)
}

func TestAssignPeriod_PrefersRolesNotYetHeld(t *testing.T) {
	units := exampleUnits(t)
	fairness := NewFairnessState()

	AssignPeriod(models.PeriodAMSwim, units, models.SwimRoles(), fairness, keepOrder{})
	second := AssignPeriod(models.PeriodPMSwim, units, models.SwimRoles(), fairness, keepOrder{})

	assert.Equal(t, map[string]string{
		"E": models.RoleWatchers,
		"B": models.RoleWatchers,
		"A": models.RoleBongo,
		"C": models.RoleMedicalTent,
		"D": models.RoleTrailSweeper, // only candidate left, history ignored
	}, rolesByName(second))
	assert.True(t, fairness.HasHeld("A", models.RoleWatchers))
	assert.True(t, fairness.HasHeld("A", models.RoleBongo))
	assert.False(t, fairness.HasHeld("A", models.RoleTrailSweeper))
}

func TestAssignPeriod_LifeguardRotatesAmongCertified(t *testing.T) {
	roster := buildRoster(t, "", map[models.GroupID][]staff{
		models.GroupRed:  {{name: "L1", lifeguard: true}, {name: "N1"}},
		models.GroupBlue: {{name: "L2", lifeguard: true}},
	})
	units, err := BuildUnits(roster)
	require.NoError(t, err)
	reqs := []models.RoleRequirement{{Role: models.RoleLifeguard, Count: 1, RequiresLifeguard: true}}
	fairness := NewFairnessState()

	var guards []string
	for i := 0; i < 3; i++ {
		pa := AssignPeriod(models.PeriodAMSwim, units, reqs, fairness, keepOrder{})
		require.Empty(t, pa.Shortfalls)
		for name, role := range rolesByName(pa) {
			if role == models.RoleLifeguard {
				guards = append(guards, name)
			}
		}
	}

	// third period falls back to the first certified candidate
	assert.Equal(t, []string{"L1", "L2", "L1"}, guards)
}

func TestAssignPeriod_FreeTimeBalancesAcrossPeriods(t *testing.T) {
	roster := buildRoster(t, "", map[models.GroupID][]staff{
		models.GroupRed:    {{name: "X"}},
		models.GroupBlue:   {{name: "Y"}},
		models.GroupOrange: {{name: "Z"}},
	})
	units, err := BuildUnits(roster)
	require.NoError(t, err)
	reqs := []models.RoleRequirement{{Role: models.RoleFreeTime, Count: 2, BalancesFreeTime: true}}
	fairness := NewFairnessState()

	var left []string
	for i := 0; i < 3; i++ {
		pa := AssignPeriod(models.PeriodActivity1, units, reqs, fairness, keepOrder{})
		require.Len(t, pa.NotAssigned, 1)
		left = append(left, pa.NotAssigned[0])
	}

	assert.Equal(t, []string{"Z", "Y", "X"}, left)
	assert.Equal(t, map[string]int{"X": 2, "Y": 2, "Z": 2}, fairness.FreeTimeCount)
}

func TestAssignPeriod_PoolLargerThanRequirements(t *testing.T) {
	roster := fullRoster(t, "")
	units, err := BuildUnits(roster)
	require.NoError(t, err)

	rng, _, err := NewRandom(7)
	require.NoError(t, err)
	pa := AssignPeriod(models.PeriodAMSwim, units, models.SwimRoles(), NewFairnessState(), rng)

	counts := pa.RoleCounts()
	assert.Equal(t, 1, counts[models.RoleLifeguard])
	assert.Equal(t, 2, counts[models.RoleWatchers])
	assert.Equal(t, 4, counts[models.RoleFreeTime])
	assert.Equal(t, 24-10, counts[models.RoleNotAssigned])
	assert.Len(t, pa.NotAssigned, 14)
	assert.Empty(t, pa.Shortfalls)
}
