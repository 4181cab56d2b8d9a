package scheduler

import (
	"fmt"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
)

// RepairSeniorCoverage swaps members between chore groups so that each group
// holds at least one senior counselor where possible. groups is modified in
// place and returned.
//
// Phase A moves a senior out of a group holding more than one, into a group
// holding none, in exchange for a non-senior of the same origin group. Phase B
// handles groups still without a senior: it scans every other group in order,
// again swapping only with a same-origin non-senior of the deficit group.
// Donors holding a single senior are skipped in both phases, so a swap never
// uncovers the donor. A layout such as [SeniorRed, Blue] + [Red] is therefore
// left with a warning on the second group even though a same-origin pair exists.
//
// Groups that end with no senior are flagged with CoverageWarning and reported.
func RepairSeniorCoverage(groups []models.ChoreGroup) ([]models.ChoreGroup, []models.CoverageWarning) {
	var deficit, surplus []int
	for i := range groups {
		switch n := groups[i].SeniorCount(); {
		case n == 0:
			deficit = append(deficit, i)
		case n > 1:
			surplus = append(surplus, i)
		}
	}

	// Phase A: same-origin swaps from surplus groups
	for _, d := range deficit {
		for si := 0; si < len(surplus); si++ {
			s := surplus[si]
			if !swapSameOrigin(groups, s, d) {
				continue
			}
			if groups[s].SeniorCount() <= 1 {
				surplus = append(surplus[:si], surplus[si+1:]...)
			}
			break
		}
	}

	// Phase B: any other donor that can spare a senior
	for _, d := range deficit {
		if groups[d].SeniorCount() > 0 {
			continue
		}
		for o := range groups {
			if o == d || groups[o].SeniorCount() < 2 {
				continue
			}
			if swapSameOrigin(groups, o, d) {
				break
			}
		}
	}

	var warnings []models.CoverageWarning
	for i := range groups {
		groups[i].HasSenior = groups[i].SeniorCount() > 0
		groups[i].CoverageWarning = !groups[i].HasSenior
		if groups[i].CoverageWarning {
			warnings = append(warnings, models.CoverageWarning{
				GroupNumber: groups[i].Number,
				Code:        WarningUnresolvedSeniorCoverage,
				Message:     fmt.Sprintf("chore group %d has no senior counselor", groups[i].Number),
			})
		}
	}
	return groups, warnings
}

// swapSameOrigin exchanges the first senior in donor that has a same-origin
// non-senior in target. It reports whether a swap happened.
func swapSameOrigin(groups []models.ChoreGroup, donor, target int) bool {
	for di, senior := range groups[donor].Members {
		if !senior.SeniorCounselor {
			continue
		}
		for ti, m := range groups[target].Members {
			if !m.SeniorCounselor && m.Origin == senior.Origin {
				swapMembers(groups, donor, di, target, ti)
				return true
			}
		}
	}
	return false
}

func swapMembers(groups []models.ChoreGroup, a, ai, b, bi int) {
	groups[a].Members[ai], groups[b].Members[bi] = groups[b].Members[bi], groups[a].Members[ai]
}
