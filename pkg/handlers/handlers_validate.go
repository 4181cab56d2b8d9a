package handlers

import (
	"net/http"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/roster"
	"github.com/arnavshah/camp-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// ValidateRoster checks a roster and previews what scheduling it would yield
func (h *Handler) ValidateRoster(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	r, err := roster.FromInput(input)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	units, err := scheduler.BuildUnits(r)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	active, lifeguards, seniors := 0, 0, 0
	for _, u := range units {
		for _, m := range u.Members {
			active++
			if m.LifeguardCertified {
				lifeguards++
			}
		}
	}
	for _, g := range r.Groups {
		for _, m := range g.Filled() {
			if m.SeniorCounselor {
				seniors++
			}
		}
	}

	var warnings []string
	if lifeguards == 0 {
		warnings = append(warnings, scheduler.WarningInsufficientCertifiedStaff)
	}
	if groups, err := scheduler.BuildChoreGroups(r, 0); err == nil && seniors < len(groups) {
		warnings = append(warnings, scheduler.WarningUnresolvedSeniorCoverage)
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"warnings": warnings,
		"stats": gin.H{
			"staff_count":  r.StaffCount(),
			"active_staff": active,
			"unit_count":   len(units),
			"lifeguards":   lifeguards,
			"seniors":      seniors,
			"on_break":     r.OnBreak,
		},
	})
}
