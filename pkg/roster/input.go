// Package roster converts, stores and loads the staff roster consumed by the scheduler.
package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
)

// FromInput validates a client supplied roster and converts it to a snapshot.
// Blank names are empty slots. Staff without an id get one derived from their slot.
func FromInput(in models.RosterInput) (models.Roster, error) {
	r := models.NewRoster()
	seen := make(map[string]bool)

	names := make([]string, 0, len(in.Groups))
	for name := range in.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	given := make(map[models.GroupID]string, len(names))
	for _, name := range names {
		slots := in.Groups[name]
		id, err := models.ParseGroupID(name)
		if err != nil {
			return models.Roster{}, err
		}
		if prev, ok := given[id]; ok {
			return models.Roster{}, fmt.Errorf("%w: %q and %q", models.ErrDuplicateGroup, prev, name)
		}
		given[id] = name
		if len(slots) > models.SlotsPerGroup {
			return models.Roster{}, fmt.Errorf("%w: %s has %d", models.ErrTooManySlots, id, len(slots))
		}
		for i, s := range slots {
			if strings.TrimSpace(s.Name) == "" {
				continue
			}
			if err := r.SetSlot(id, i, memberFromInput(s)); err != nil {
				return models.Roster{}, err
			}
		}
	}

	for _, g := range r.Groups {
		for _, m := range g.Filled() {
			if seen[m.ID] {
				return models.Roster{}, fmt.Errorf("%w: %s", models.ErrDuplicateStaffID, m.ID)
			}
			seen[m.ID] = true
		}
	}

	if in.OnBreak != "" {
		id, err := models.ParseGroupID(in.OnBreak)
		if err != nil {
			return models.Roster{}, err
		}
		if err := r.SetOnBreak(id); err != nil {
			return models.Roster{}, err
		}
	}
	return r, nil
}

// ToInput converts a snapshot back to its boundary shape
func ToInput(r models.Roster) models.RosterInput {
	in := models.RosterInput{
		Groups:  make(map[string][]models.SlotInput, len(r.Groups)),
		OnBreak: string(r.OnBreak),
	}
	for _, g := range r.Groups {
		last := -1
		for i, m := range g.Slots {
			if m != nil && m.Name != "" {
				last = i
			}
		}
		slots := make([]models.SlotInput, last+1)
		for i := 0; i <= last; i++ {
			if m := g.Slots[i]; m != nil {
				slots[i] = slotFromMember(*m)
			}
		}
		in.Groups[string(g.ID)] = slots
	}
	return in
}

// View renders the roster the way the editing surface displays it
func View(r models.Roster) models.RosterView {
	view := models.RosterView{OnBreak: r.OnBreak, StaffCount: r.StaffCount()}
	for _, g := range r.Groups {
		gv := models.GroupView{
			ID:      g.ID,
			Slots:   make([]*models.SlotInput, models.SlotsPerGroup),
			OnBreak: r.OnBreak == g.ID,
		}
		for i, m := range g.Slots {
			if m != nil && m.Name != "" {
				s := slotFromMember(*m)
				gv.Slots[i] = &s
			}
		}
		n := g.FilledCount()
		gv.Count = fmt.Sprintf("%d/%d", n, models.SlotsPerGroup)
		gv.Full = n == models.SlotsPerGroup
		view.Groups = append(view.Groups, gv)
	}
	return view
}

func memberFromInput(s models.SlotInput) models.StaffMember {
	return models.StaffMember{
		ID:                 strings.TrimSpace(s.ID),
		Name:               s.Name,
		LifeguardCertified: s.LifeguardCertified,
		SeniorCounselor:    s.SeniorCounselor,
	}
}

func slotFromMember(m models.StaffMember) models.SlotInput {
	return models.SlotInput{
		ID:                 m.ID,
		Name:               m.Name,
		LifeguardCertified: m.LifeguardCertified,
		SeniorCounselor:    m.SeniorCounselor,
	}
}
