package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the index route
const Version = "1.0.0"

// Register mounts every route on r
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Camp Scheduler API",
			"version": Version,
		})
	})

	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Scheduler Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.GET("/roster", h.GetRoster)
		api.PUT("/roster", h.ReplaceRoster)
		api.DELETE("/roster", h.ClearRoster)
		api.PUT("/roster/break", h.PutBreak)
		api.PUT("/roster/:group/:slot", h.PutSlot)
		api.DELETE("/roster/:group/:slot", h.DeleteSlot)

		api.POST("/schedule", h.ScheduleDay)
		api.POST("/chores", h.BuildChores)
		api.POST("/validate", h.ValidateRoster)
		api.GET("/usage", h.GetMyUsage)
	}
}
