package scheduler

import "github.com/arnavshah/camp-scheduler-api/pkg/models"

// BuildUnits pairs same-slot staff from every group that is not on break.
// Unit i holds slot i of red, blue, orange and green in that order, skipping
// empty slots. Units with no members are not emitted.
func BuildUnits(roster models.Roster) ([]models.Unit, error) {
	var units []models.Unit
	for slot := 0; slot < models.SlotsPerGroup; slot++ {
		unit := models.Unit{Index: len(units)}
		for _, g := range roster.Groups {
			if roster.OnBreak != "" && g.ID == roster.OnBreak {
				continue
			}
			m := g.Slots[slot]
			if m == nil || m.Name == "" {
				continue
			}
			member := *m
			member.Group = g.ID
			if member.ID == "" {
				member.ID = models.StaffID(g.ID, slot)
			}
			unit.Members = append(unit.Members, member)
		}
		if len(unit.Members) > 0 {
			units = append(units, unit)
		}
	}

	if len(units) == 0 {
		return nil, ErrEmptyRoster
	}
	return units, nil
}
