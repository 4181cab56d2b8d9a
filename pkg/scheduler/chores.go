package scheduler

import (
	"fmt"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
)

// BuildChoreGroups partitions every named staff member into chore groups by
// index rotation. Break status is ignored.
//
// The member at position staffIndex of the group at position groupIndex
// (red=0, blue=1, orange=2, green=3) lands in chore group
// (staffIndex + groupIndex) mod count. count defaults to the largest filled
// group size when groupCount <= 0, and may not exceed the number of staff.
func BuildChoreGroups(roster models.Roster, groupCount int) ([]models.ChoreGroup, error) {
	var filled [len(models.Groups)][]models.StaffMember
	maxSize := 0
	for gi, g := range roster.Groups {
		filled[gi] = g.Filled()
		if len(filled[gi]) > maxSize {
			maxSize = len(filled[gi])
		}
	}
	if maxSize == 0 {
		return nil, ErrEmptyRoster
	}

	count := groupCount
	if count <= 0 {
		count = maxSize
	}
	if staff := roster.StaffCount(); count > staff {
		return nil, fmt.Errorf("%w: %d groups for %d staff", ErrTooManyChoreGroups, count, staff)
	}

	groups := make([]models.ChoreGroup, count)
	for i := range groups {
		groups[i].Number = i + 1
	}

	for gi, members := range filled {
		origin := roster.Groups[gi].ID
		for si, m := range members {
			idx := (si + gi) % count
			groups[idx].Members = append(groups[idx].Members, models.ChoreMember{
				StaffID:         m.ID,
				Name:            m.Name,
				SeniorCounselor: m.SeniorCounselor,
				Origin:          origin,
			})
		}
	}

	for i := range groups {
		groups[i].HasSenior = groups[i].SeniorCount() > 0
	}
	return groups, nil
}

// BuildRepairedChoreGroups builds the rotation and runs the senior coverage repair
func BuildRepairedChoreGroups(roster models.Roster, groupCount int) ([]models.ChoreGroup, []models.CoverageWarning, error) {
	groups, err := BuildChoreGroups(roster, groupCount)
	if err != nil {
		return nil, nil, err
	}
	groups, warnings := RepairSeniorCoverage(groups)
	return groups, warnings, nil
}
