package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/roster"
	"github.com/gin-gonic/gin"
)

// GetRoster returns the stored roster with per-group counts
func (h *Handler) GetRoster(c *gin.Context) {
	r, err := h.Roster.Load(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roster.View(r))
}

// ReplaceRoster overwrites the stored roster with a full snapshot
func (h *Handler) ReplaceRoster(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := roster.FromInput(input)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Roster.Replace(c.Request.Context(), r); err != nil {
		h.fail(c, err)
		return
	}
	h.GetRoster(c)
}

// PutSlot stores one staff member. A blank name clears the slot.
func (h *Handler) PutSlot(c *gin.Context) {
	group, slot, err := slotParams(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var input models.SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.Roster.SaveSlot(c.Request.Context(), group, slot, input)
	if err != nil {
		h.fail(c, err)
		return
	}
	if member == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Slot cleared"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteSlot empties one slot
func (h *Handler) DeleteSlot(c *gin.Context) {
	group, slot, err := slotParams(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.Roster.ClearSlot(c.Request.Context(), group, slot); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot cleared"})
}

// ClearRoster removes all staff and takes every group off break
func (h *Handler) ClearRoster(c *gin.Context) {
	if err := h.Roster.ClearAll(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.Info("roster cleared", "user", c.GetString("userID"))
	c.JSON(http.StatusOK, gin.H{"message": "Roster cleared"})
}

// PutBreak sets which group is on break. An empty group means nobody.
func (h *Handler) PutBreak(c *gin.Context) {
	var req struct {
		Group string `json:"group"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var group models.GroupID
	if req.Group != "" {
		var err error
		if group, err = models.ParseGroupID(req.Group); err != nil {
			h.fail(c, err)
			return
		}
	}
	if err := h.Roster.SetOnBreak(c.Request.Context(), group); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"on_break": group})
}

func slotParams(c *gin.Context) (models.GroupID, int, error) {
	group, err := models.ParseGroupID(c.Param("group"))
	if err != nil {
		return "", 0, err
	}
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", models.ErrSlotOutOfRange, c.Param("slot"))
	}
	return group, slot, nil
}
