package main

import (
	"os"

	"github.com/arnavshah/camp-scheduler-api/pkg/auth"
	"github.com/arnavshah/camp-scheduler-api/pkg/config"
	"github.com/arnavshah/camp-scheduler-api/pkg/database"
	"github.com/arnavshah/camp-scheduler-api/pkg/handlers"
	"github.com/arnavshah/camp-scheduler-api/pkg/logging"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("error").Error("could not load config", "err", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.InitDB(cfg.DatabaseURL, cfg.DataPath)
	if err != nil {
		logger.Error("could not open database", "err", err)
		os.Exit(1)
	}
	if err := auth.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Warn("could not seed admin user", "err", err)
	}

	h := handlers.NewHandler(db, auth.NewService(cfg.JWTSecret, cfg.MasterSecret), logger)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.Register(r)

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("could not run server", "err", err)
		os.Exit(1)
	}
}
