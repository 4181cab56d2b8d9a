package scheduler

import (
	"testing"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChoreGroups_Rotation(t *testing.T) {
	roster := buildRoster(t, "", map[models.GroupID][]staff{
		models.GroupRed:    {{name: "A", senior: true}},
		models.GroupBlue:   {{name: "B"}},
		models.GroupOrange: {{name: "C"}},
		models.GroupGreen:  {{name: "D", senior: true}},
	})

	groups, err := BuildChoreGroups(roster, 2)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"A", "C"}, memberNames(groups[0]))
	assert.Equal(t, []string{"B", "D"}, memberNames(groups[1]))

	repaired, warnings := RepairSeniorCoverage(groups)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"A", "C"}, memberNames(repaired[0]))
	assert.Equal(t, []string{"B", "D"}, memberNames(repaired[1]))
	assert.True(t, repaired[0].HasSenior)
	assert.True(t, repaired[1].HasSenior)
}

func TestBuildChoreGroups_DefaultCountIsLargestGroup(t *testing.T) {
	roster := buildRoster(t, models.GroupRed, map[models.GroupID][]staff{
		models.GroupRed:    {{name: "R0"}, {name: "R1"}, {name: "R2"}},
		models.GroupBlue:   {{name: "B0"}, {name: "B1"}},
		models.GroupOrange: {{name: "O0"}},
		models.GroupGreen:  {{name: "G0"}, {name: "G1"}},
	})

	groups, err := BuildChoreGroups(roster, 0)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// break status is ignored; (staffIndex + groupIndex) mod 3
	assert.Equal(t, []string{"R0", "G0"}, memberNames(groups[0]))
	assert.Equal(t, []string{"R1", "B0", "G1"}, memberNames(groups[1]))
	assert.Equal(t, []string{"R2", "B1", "O0"}, memberNames(groups[2]))
	assert.Equal(t, 1, groups[0].Number)
	assert.Equal(t, models.GroupGreen, groups[0].Members[1].Origin)
}

func TestBuildChoreGroups_IsPartition(t *testing.T) {
	roster := fullRoster(t, models.GroupOrange)

	groups, err := BuildChoreGroups(roster, 0)
	require.NoError(t, err)
	require.Len(t, groups, models.SlotsPerGroup)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, m := range g.Members {
			seen[m.StaffID]++
		}
	}
	assert.Len(t, seen, roster.StaffCount())
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}

	again, err := BuildChoreGroups(roster, 0)
	require.NoError(t, err)
	assert.Equal(t, groups, again)
}

func TestBuildChoreGroups_EmptyRoster(t *testing.T) {
	_, err := BuildChoreGroups(models.NewRoster(), 0)
	assert.ErrorIs(t, err, ErrEmptyRoster)

	_, _, err = BuildRepairedChoreGroups(models.NewRoster(), 3)
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestBuildChoreGroups_CountCappedAtStaff(t *testing.T) {
	roster := buildRoster(t, "", map[models.GroupID][]staff{
		models.GroupRed:  {{name: "A"}},
		models.GroupBlue: {{name: "B"}},
	})

	groups, err := BuildChoreGroups(roster, 2)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = BuildChoreGroups(roster, 3)
	assert.ErrorIs(t, err, ErrTooManyChoreGroups)

	_, _, err = BuildRepairedChoreGroups(roster, 5_000_000)
	assert.ErrorIs(t, err, ErrTooManyChoreGroups)
}
