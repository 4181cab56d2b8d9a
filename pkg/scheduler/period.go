package scheduler

import "github.com/arnavshah/camp-scheduler-api/pkg/models"

// FairnessState is the run-scoped bookkeeping shared by every period of one day.
// Both maps are keyed by staff id.
type FairnessState struct {
	RoleHistory   map[string]map[string]bool
	FreeTimeCount map[string]int
}

// NewFairnessState creates empty fairness bookkeeping for a fresh run
func NewFairnessState() *FairnessState {
	return &FairnessState{
		RoleHistory:   make(map[string]map[string]bool),
		FreeTimeCount: make(map[string]int),
	}
}

// HasHeld reports whether the staff member already held the role this run
func (f *FairnessState) HasHeld(staffID, role string) bool {
	return f.RoleHistory[staffID][role]
}

func (f *FairnessState) record(staffID, role string) {
	held, ok := f.RoleHistory[staffID]
	if !ok {
		held = make(map[string]bool)
		f.RoleHistory[staffID] = held
	}
	held[role] = true
}

// AssignPeriod fills the role requirements for one period from the members of units.
//
// The candidate pool is shuffled once with rng. Requirements are processed in the
// order given, one slot at a time. Balanced roles (Free Time) go to the unassigned
// candidate with the lowest free-time count, earliest in shuffle order on ties.
// Other roles prefer an eligible candidate who has not held the role this run and
// fall back to any eligible candidate. Slots that cannot be filled are reported as
// shortfalls, and leftover candidates are "Not Assigned".
func AssignPeriod(period models.Period, units []models.Unit, reqs []models.RoleRequirement, fairness *FairnessState, rng Random) models.PeriodAssignment {
	var pool []models.StaffMember
	for _, u := range units {
		pool = append(pool, u.Members...)
	}
	if rng != nil {
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	roles := make(map[string]string, len(pool))
	result := models.PeriodAssignment{Period: period}

	for _, req := range reqs {
		filled := 0
		for n := 0; n < req.Count; n++ {
			var best int
			if req.BalancesFreeTime {
				best = pickLeastFreeTime(pool, roles, req, fairness)
			} else {
				best = pickFresh(pool, roles, req, fairness)
			}
			if best < 0 {
				break
			}

			m := pool[best]
			roles[m.ID] = req.Role
			fairness.record(m.ID, req.Role)
			if req.BalancesFreeTime {
				fairness.FreeTimeCount[m.ID]++
			}
			filled++
		}

		if filled < req.Count {
			reason := models.ReasonPoolExhausted
			if req.RequiresLifeguard {
				reason = models.ReasonInsufficientCertifiedStaff
			}
			result.Shortfalls = append(result.Shortfalls, models.RoleShortfall{
				Role:     req.Role,
				Required: req.Count,
				Filled:   filled,
				Reason:   reason,
			})
		}
	}

	result.NotAssigned = []string{}
	for _, u := range units {
		ua := models.UnitAssignment{UnitNumber: u.Index + 1}
		for _, m := range u.Members {
			role, ok := roles[m.ID]
			if !ok {
				role = models.RoleNotAssigned
				result.NotAssigned = append(result.NotAssigned, m.ID)
			}
			ua.Assignments = append(ua.Assignments, models.RoleAssignment{
				StaffID: m.ID,
				Name:    m.Name,
				Group:   m.Group,
				Role:    role,
			})
		}
		result.Units = append(result.Units, ua)
	}

	return result
}

// pickFresh returns the first eligible unassigned candidate who has not held the
// role, else the first eligible unassigned candidate, else -1.
func pickFresh(pool []models.StaffMember, roles map[string]string, req models.RoleRequirement, fairness *FairnessState) int {
	fallback := -1
	for i, m := range pool {
		if _, taken := roles[m.ID]; taken || !req.Eligible(m) {
			continue
		}
		if !fairness.HasHeld(m.ID, req.Role) {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

// pickLeastFreeTime returns the unassigned candidate with the lowest free-time
// count. Strict comparison keeps the earliest in shuffle order on ties.
func pickLeastFreeTime(pool []models.StaffMember, roles map[string]string, req models.RoleRequirement, fairness *FairnessState) int {
	best := -1
	for i, m := range pool {
		if _, taken := roles[m.ID]; taken || !req.Eligible(m) {
			continue
		}
		if best < 0 || fairness.FreeTimeCount[m.ID] < fairness.FreeTimeCount[pool[best].ID] {
			best = i
		}
	}
	return best
}
