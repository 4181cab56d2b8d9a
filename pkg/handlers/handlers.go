package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/arnavshah/camp-scheduler-api/pkg/auth"
	"github.com/arnavshah/camp-scheduler-api/pkg/database"
	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/roster"
	"github.com/arnavshah/camp-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultRateLimit = 10000

// Handler contains dependencies for the route handlers
type Handler struct {
	DB     *gorm.DB
	Auth   *auth.Service
	Roster *roster.Repository
	Logger *slog.Logger
}

// NewHandler wires a Handler around an initialised database
func NewHandler(db *gorm.DB, authService *auth.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		DB:     db,
		Auth:   authService,
		Roster: roster.NewRepository(db),
		Logger: logger,
	}
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := h.Auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the HMAC API key and enforces its daily rate limit
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearer(c.GetHeader("Authorization"))
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			return
		}

		userID, err := h.Auth.VerifyHMACKey(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			return
		}

		// Fetch or create API key record to track usage
		var apiKey database.APIKey
		err = h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:        key,
			KeyPreview: preview(key),
			Name:       userID,
			RateLimit:  defaultRateLimit,
		}).Error
		if err != nil {
			h.Logger.Error("load api key", "user", userID, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not load API key"})
			return
		}

		var usage database.APIUsage
		today := time.Now().Format("2006-01-02")
		if err := h.DB.Where("key_id = ? AND date = ?", apiKey.ID, today).First(&usage).Error; err == nil {
			if apiKey.RateLimit > 0 && usage.RequestCount >= apiKey.RateLimit {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Daily rate limit reached"})
				return
			}
		}

		now := time.Now()
		h.DB.Model(&apiKey).Update("last_used", &now)

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// RecordUsage records API usage in the database using an efficient upsert
func (h *Handler) RecordUsage(c *gin.Context, staffCount, groupCount int) {
	apiKeyRaw, exists := c.Get("apiKey")
	if !exists {
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	today := time.Now().Format("2006-01-02")

	// Use OnConflict for a single-query upsert (supported by both Postgres and SQLite)
	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("request_count + ?", 1),
			"total_staff":   gorm.Expr("total_staff + ?", staffCount),
			"total_groups":  gorm.Expr("total_groups + ?", groupCount),
		}),
	}).Create(&database.APIUsage{
		KeyID:        apiKey.ID,
		Date:         today,
		RequestCount: 1,
		TotalStaff:   staffCount,
		TotalGroups:  groupCount,
	}).Error
	if err != nil {
		h.Logger.Warn("record usage", "key_id", apiKey.ID, "err", err)
	}
}

// errorStatus maps engine and roster errors onto HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, scheduler.ErrEmptyRoster):
		return http.StatusUnprocessableEntity
	case errors.Is(err, scheduler.ErrTooManyChoreGroups),
		errors.Is(err, models.ErrUnknownGroup),
		errors.Is(err, models.ErrSlotOutOfRange),
		errors.Is(err, models.ErrTooManySlots),
		errors.Is(err, models.ErrDuplicateStaffID),
		errors.Is(err, models.ErrDuplicateGroup):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func bearer(header string) string {
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return header
}

func preview(key string) string {
	if len(key) > 8 {
		return key[:3] + "..." + key[len(key)-4:]
	}
	return "****"
}
