package models

// Role names used by the daily schedule
const (
	RoleLifeguard       = "Lifeguard"
	RoleWatchers        = "Watchers"
	RoleBongo           = "Bongo"
	RoleMedicalTent     = "Medical Tent"
	RoleTrailSweeper    = "Trail Sweeper"
	RoleRunningActivity = "Running Activity"
	RoleFreeTime        = "Free Time"
	RoleNotAssigned     = "Not Assigned"
)

// Period is one of the four daily scheduling windows
type Period string

const (
	PeriodAMSwim    Period = "AM Swim"
	PeriodActivity1 Period = "Activity 1"
	PeriodActivity2 Period = "Activity 2"
	PeriodPMSwim    Period = "PM Swim"
)

// DayPeriods lists the periods in the order they are scheduled
var DayPeriods = [4]Period{PeriodAMSwim, PeriodActivity1, PeriodActivity2, PeriodPMSwim}

// IsSwim reports whether the period uses the swim role set
func (p Period) IsSwim() bool {
	return p == PeriodAMSwim || p == PeriodPMSwim
}

// Roles returns the role requirements for the period type
func (p Period) Roles() []RoleRequirement {
	if p.IsSwim() {
		return SwimRoles()
	}
	return ActivityRoles()
}

// RoleRequirement is a named duty with a headcount and eligibility rule
type RoleRequirement struct {
	Role              string `json:"role"`
	Count             int    `json:"count"`
	RequiresLifeguard bool   `json:"requires_lifeguard,omitempty"`
	BalancesFreeTime  bool   `json:"balances_free_time,omitempty"`
}

// Eligible reports whether a member may hold the role at all
func (r RoleRequirement) Eligible(m StaffMember) bool {
	return !r.RequiresLifeguard || m.LifeguardCertified
}

// SwimRoles returns the swim-period requirements in declared order
func SwimRoles() []RoleRequirement {
	return []RoleRequirement{
		{Role: RoleLifeguard, Count: 1, RequiresLifeguard: true},
		{Role: RoleWatchers, Count: 2},
		{Role: RoleBongo, Count: 1},
		{Role: RoleMedicalTent, Count: 1},
		{Role: RoleTrailSweeper, Count: 1},
		{Role: RoleFreeTime, Count: 4, BalancesFreeTime: true},
	}
}

// ActivityRoles returns the activity-period requirements in declared order
func ActivityRoles() []RoleRequirement {
	return []RoleRequirement{
		{Role: RoleTrailSweeper, Count: 1},
		{Role: RoleMedicalTent, Count: 1},
		{Role: RoleRunningActivity, Count: 6},
		{Role: RoleFreeTime, Count: 5, BalancesFreeTime: true},
	}
}

// Unit is a cross-group team of same-slot staff from the active groups
type Unit struct {
	Index   int           `json:"index"`
	Members []StaffMember `json:"members"`
}

// RoleAssignment records the role one staff member holds in a period
type RoleAssignment struct {
	StaffID string  `json:"staff_id"`
	Name    string  `json:"name"`
	Group   GroupID `json:"group"`
	Role    string  `json:"role"`
}

// UnitAssignment is the per-unit projection of a period's assignments
type UnitAssignment struct {
	UnitNumber  int              `json:"unit_number"`
	Assignments []RoleAssignment `json:"assignments"`
}

// Shortfall reasons
const (
	ReasonInsufficientCertifiedStaff = "InsufficientCertifiedStaff"
	ReasonPoolExhausted              = "PoolExhausted"
)

// RoleShortfall represents a role that could not be filled to its headcount
type RoleShortfall struct {
	Role     string `json:"role"`
	Required int    `json:"required"`
	Filled   int    `json:"filled"`
	Reason   string `json:"reason"`
}

// PeriodAssignment is the result of assigning roles for one period
type PeriodAssignment struct {
	Period      Period           `json:"period"`
	Units       []UnitAssignment `json:"units"`
	NotAssigned []string         `json:"not_assigned"` // staff ids
	Shortfalls  []RoleShortfall  `json:"shortfalls,omitempty"`
}

// RoleCounts tallies how many staff hold each role in the period
func (p PeriodAssignment) RoleCounts() map[string]int {
	counts := make(map[string]int)
	for _, u := range p.Units {
		for _, a := range u.Assignments {
			counts[a.Role]++
		}
	}
	return counts
}

// DaySchedule holds the four period results of one scheduling run
type DaySchedule struct {
	Units         []Unit             `json:"units"`
	Periods       []PeriodAssignment `json:"periods"`
	FreeTimeCount map[string]int     `json:"free_time_count"`
	FairnessScore float64            `json:"fairness_score"`
}
