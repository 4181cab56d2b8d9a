package models

// ChoreMember is a staff member placed in a chore group
type ChoreMember struct {
	StaffID         string  `json:"staff_id"`
	Name            string  `json:"name"`
	SeniorCounselor bool    `json:"senior_counselor"`
	Origin          GroupID `json:"origin_group"`
}

// ChoreGroup is one bucket of the chore partition
type ChoreGroup struct {
	Number          int           `json:"number"`
	Members         []ChoreMember `json:"group_members"`
	HasSenior       bool          `json:"has_senior"`
	CoverageWarning bool          `json:"coverage_warning,omitempty"`
}

// SeniorCount returns how many senior counselors the group holds
func (g ChoreGroup) SeniorCount() int {
	n := 0
	for _, m := range g.Members {
		if m.SeniorCounselor {
			n++
		}
	}
	return n
}
