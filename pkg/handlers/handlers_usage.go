package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arnavshah/camp-scheduler-api/pkg/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultUsageDays = 30
	maxUsageDays     = 90
)

// UsageSummary aggregates the daily usage rows of one key
type UsageSummary struct {
	Days            int     `json:"days"`
	Requests        int64   `json:"requests"`
	Staff           int64   `json:"staff"`
	Groups          int64   `json:"groups"`
	AvgStaffPerRun  float64 `json:"avg_staff_per_run"`
	AvgGroupsPerRun float64 `json:"avg_groups_per_run"`
	TodayRequests   int     `json:"today_requests"`
	RemainingToday  int     `json:"remaining_today"`
}

// summarizeUsage totals rows and derives per-run averages and today's remaining quota.
// A rate limit of zero or less means unlimited and reports -1 remaining.
func summarizeUsage(rows []database.APIUsage, rateLimit int, today string) UsageSummary {
	s := UsageSummary{Days: len(rows)}
	for _, u := range rows {
		s.Requests += int64(u.RequestCount)
		s.Staff += int64(u.TotalStaff)
		s.Groups += int64(u.TotalGroups)
		if u.Date == today {
			s.TodayRequests = u.RequestCount
		}
	}
	if s.Requests > 0 {
		s.AvgStaffPerRun = float64(s.Staff) / float64(s.Requests)
		s.AvgGroupsPerRun = float64(s.Groups) / float64(s.Requests)
	}

	s.RemainingToday = -1
	if rateLimit > 0 {
		s.RemainingToday = max(rateLimit-s.TodayRequests, 0)
	}
	return s
}

// usageRows loads the most recent daily rows for a key, bounded by ?days=
func usageRows(db *gorm.DB, c *gin.Context, keyID any) ([]database.APIUsage, error) {
	days := defaultUsageDays
	if v, err := strconv.Atoi(c.Query("days")); err == nil && v > 0 {
		days = min(v, maxUsageDays)
	}

	var usage []database.APIUsage
	err := db.Where("key_id = ?", keyID).Order("date desc").Limit(days).Find(&usage).Error
	return usage, err
}

// GetMyUsage returns usage stats for the authenticated API key
func (h *Handler) GetMyUsage(c *gin.Context) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	usage, err := usageRows(h.DB, c, apiKey.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key_name":      apiKey.Name,
		"rate_limit":    apiKey.RateLimit,
		"usage_history": usage,
		"totals":        summarizeUsage(usage, apiKey.RateLimit, time.Now().Format("2006-01-02")),
	})
}
