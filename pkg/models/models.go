package models

import (
	"errors"
	"fmt"
	"strings"
)

// SlotsPerGroup is the number of staff slots in each day-off group
const SlotsPerGroup = 6

// GroupID identifies a day-off group
type GroupID string

const (
	GroupRed    GroupID = "red"
	GroupBlue   GroupID = "blue"
	GroupOrange GroupID = "orange"
	GroupGreen  GroupID = "green"
)

// Groups lists the day-off groups in their fixed iteration order
var Groups = [4]GroupID{GroupRed, GroupBlue, GroupOrange, GroupGreen}

var (
	ErrUnknownGroup     = errors.New("unknown day-off group")
	ErrSlotOutOfRange   = errors.New("slot index out of range")
	ErrTooManySlots     = errors.New("too many staff slots for group")
	ErrDuplicateStaffID = errors.New("duplicate staff id")
	ErrDuplicateGroup   = errors.New("day-off group given more than once")
)

// ParseGroupID converts a user supplied group name into a GroupID
func ParseGroupID(s string) (GroupID, error) {
	id := GroupID(strings.ToLower(strings.TrimSpace(s)))
	if id.Index() < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}
	return id, nil
}

// Index returns the position of the group in Groups, or -1 if unknown
func (g GroupID) Index() int {
	for i, id := range Groups {
		if id == g {
			return i
		}
	}
	return -1
}

// StaffMember represents one person on the camp roster
type StaffMember struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	LifeguardCertified bool    `json:"lifeguard_certified"`
	SeniorCounselor    bool    `json:"senior_counselor"`
	Group              GroupID `json:"group"`
}

// StaffID derives the surrogate key used when a snapshot carries no id
func StaffID(group GroupID, slot int) string {
	return fmt.Sprintf("%s-%d", group, slot)
}

// DayOffGroup holds the ordered staff slots of one cohort. Nil slots are unfilled.
type DayOffGroup struct {
	ID    GroupID                     `json:"id"`
	Slots [SlotsPerGroup]*StaffMember `json:"slots"`
}

// Filled returns the filled members in slot order, with ids and group set
func (g DayOffGroup) Filled() []StaffMember {
	var out []StaffMember
	for i, m := range g.Slots {
		if m == nil || m.Name == "" {
			continue
		}
		member := *m
		member.Group = g.ID
		if member.ID == "" {
			member.ID = StaffID(g.ID, i)
		}
		out = append(out, member)
	}
	return out
}

// FilledCount returns how many slots hold a named staff member
func (g DayOffGroup) FilledCount() int {
	return len(g.Filled())
}

// Roster is a snapshot of all four day-off groups plus the break flag.
// OnBreak is empty when no group is on break.
type Roster struct {
	Groups  [4]DayOffGroup `json:"groups"`
	OnBreak GroupID        `json:"on_break,omitempty"`
}

// NewRoster returns an empty roster with every group initialised
func NewRoster() Roster {
	var r Roster
	for i, id := range Groups {
		r.Groups[i].ID = id
	}
	return r
}

// Group returns a pointer to the named group
func (r *Roster) Group(id GroupID) (*DayOffGroup, error) {
	i := id.Index()
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, id)
	}
	return &r.Groups[i], nil
}

// SetSlot stores a member at the given slot. A blank name clears the slot.
func (r *Roster) SetSlot(id GroupID, slot int, member StaffMember) error {
	g, err := r.Group(id)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= SlotsPerGroup {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}

	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		g.Slots[slot] = nil
		return nil
	}
	member.Group = id
	if member.ID == "" {
		member.ID = StaffID(id, slot)
	}
	g.Slots[slot] = &member
	return nil
}

// ClearSlot empties one slot
func (r *Roster) ClearSlot(id GroupID, slot int) error {
	return r.SetSlot(id, slot, StaffMember{})
}

// ClearAll empties every slot and clears the break flag
func (r *Roster) ClearAll() {
	*r = NewRoster()
}

// SetOnBreak marks one group as on break, releasing any previous one.
// An empty id means nobody is on break.
func (r *Roster) SetOnBreak(id GroupID) error {
	if id != "" && id.Index() < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, id)
	}
	r.OnBreak = id
	return nil
}

// StaffCount returns the number of filled slots across all groups
func (r Roster) StaffCount() int {
	n := 0
	for _, g := range r.Groups {
		n += g.FilledCount()
	}
	return n
}
