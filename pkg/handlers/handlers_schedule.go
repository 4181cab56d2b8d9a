package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/roster"
	"github.com/arnavshah/camp-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// ScheduleDay runs the four-period role assignment. The body may carry a seed
// and an inline roster; without a roster the stored one is used.
func (h *Handler) ScheduleDay(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := h.resolveRoster(c, req.Roster)
	if err != nil {
		h.fail(c, err)
		return
	}

	rng, seed, err := scheduler.NewRandom(req.Seed)
	if err != nil {
		h.fail(c, err)
		return
	}

	s := scheduler.NewScheduler(r, rng)
	s.Logger = h.Logger.With("seed", seed)
	day, err := s.RunDay()
	if err != nil {
		h.fail(c, err)
		return
	}

	h.RecordUsage(c, r.StaffCount(), len(day.Units))

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Seed:        seed,
		DaySchedule: *day,
	})
}

// BuildChores partitions all staff into chore groups and repairs senior coverage
func (h *Handler) BuildChores(c *gin.Context) {
	var req models.ChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.GroupCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_count must not be negative"})
		return
	}

	r, err := h.resolveRoster(c, req.Roster)
	if err != nil {
		h.fail(c, err)
		return
	}

	groups, warnings, err := scheduler.BuildRepairedChoreGroups(r, req.GroupCount)
	if err != nil {
		h.fail(c, err)
		return
	}
	for _, w := range warnings {
		h.Logger.Warn("chore group without senior", "group", w.GroupNumber, "code", w.Code)
	}

	h.RecordUsage(c, r.StaffCount(), len(groups))

	c.JSON(http.StatusOK, models.ChoreResponse{
		Groups:   groups,
		Warnings: warnings,
	})
}

func (h *Handler) resolveRoster(c *gin.Context, input *models.RosterInput) (models.Roster, error) {
	if input != nil {
		return roster.FromInput(*input)
	}
	return h.Roster.Load(c.Request.Context())
}
