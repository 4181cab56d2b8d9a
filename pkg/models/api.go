package models

// SlotInput is one roster slot as supplied by a client. A blank name is an empty slot.
type SlotInput struct {
	ID                 string `json:"id,omitempty" yaml:"id,omitempty"`
	Name               string `json:"name" yaml:"name"`
	LifeguardCertified bool   `json:"lifeguard_certified" yaml:"lifeguard_certified"`
	SeniorCounselor    bool   `json:"senior_counselor" yaml:"senior_counselor"`
}

// RosterInput is the boundary shape of a roster: group name -> ordered slots
type RosterInput struct {
	Groups  map[string][]SlotInput `json:"groups" yaml:"groups"`
	OnBreak string                 `json:"on_break,omitempty" yaml:"on_break,omitempty"`
}

// GroupView is a display-oriented day-off group
type GroupView struct {
	ID      GroupID      `json:"id"`
	Slots   []*SlotInput `json:"slots"`
	Count   string       `json:"count"` // "n/6"
	Full    bool         `json:"full"`
	OnBreak bool         `json:"on_break"`
}

// RosterView is the roster as returned to clients
type RosterView struct {
	Groups     []GroupView `json:"groups"`
	OnBreak    GroupID     `json:"on_break,omitempty"`
	StaffCount int         `json:"staff_count"`
}

// ScheduleRequest is the body of the scheduling endpoint. A nil roster uses the stored one.
type ScheduleRequest struct {
	Seed   int64        `json:"seed"`
	Roster *RosterInput `json:"roster"`
}

// ScheduleResponse is the data structure for the scheduling result
type ScheduleResponse struct {
	Seed int64 `json:"seed"`
	DaySchedule
}

// ChoreRequest is the body of the chore endpoint
type ChoreRequest struct {
	GroupCount int          `json:"group_count"`
	Roster     *RosterInput `json:"roster"`
}

// CoverageWarning flags a chore group left without a senior counselor
type CoverageWarning struct {
	GroupNumber int    `json:"group_number"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

// ChoreResponse is the data structure for the chore result
type ChoreResponse struct {
	Groups   []ChoreGroup      `json:"groups"`
	Warnings []CoverageWarning `json:"warnings,omitempty"`
}
