package handler

import (
	"net/http"

	"github.com/arnavshah/camp-scheduler-api/pkg/auth"
	"github.com/arnavshah/camp-scheduler-api/pkg/config"
	"github.com/arnavshah/camp-scheduler-api/pkg/database"
	"github.com/arnavshah/camp-scheduler-api/pkg/handlers"
	"github.com/arnavshah/camp-scheduler-api/pkg/logging"
	"github.com/gin-gonic/gin"
)

var (
	r       *gin.Engine
	initErr error
)

func init() {
	// .env is only present under vercel dev
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	logger := logging.New(cfg.LogLevel)

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		logger.Error("could not open database", "err", err)
		initErr = err
		return
	}
	if err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Warn("could not seed admin user", "err", err)
	}

	h := handlers.NewHandler(db, auth.NewService(cfg.JWTSecret, cfg.MasterSecret), logger)

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.Register(r)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	r.ServeHTTP(w, req)
}
