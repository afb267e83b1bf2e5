package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/api"
	"github.com/kovi/agls/internal/audit"
	"github.com/kovi/agls/internal/config"
	"github.com/kovi/agls/middleware"
	log "github.com/sirupsen/logrus"
)

var (
	configFile = flag.String("config", "config.yaml", "config file")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	log.Info("Starting...")

	cfg := config.NewConfig()
	if err := cfg.LoadYAML(*configFile); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Fatal("failed to load config yaml")
		}
		log.Infof("%s does not exist, using defaults", *configFile)
	}
	if err := cfg.LoadEnv(); err != nil {
		log.WithError(err).Fatal("failed to load config from environment")
	}
	if err := cfg.Finalize(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	for _, p := range cfg.UnknownProperties() {
		log.WithField("property", p).Warn("AGLS metadata entry uses an unknown property and will render without content")
	}

	db, err := config.ConnectDB(cfg.Database.File)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	if err := api.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	auditor, err := audit.NewAuditor(cfg.Audit.File)
	if err != nil {
		log.WithError(err).Fatal("failed to open audit log")
	}

	h := &api.Handler{
		DB:     db,
		Config: cfg,
		Log:    log.WithField("module", "api"),
		Audit:  auditor,
	}
	if err := api.InitializeVersionInfo(h.Log); err != nil {
		log.WithError(err).Warn("version info unavailable")
	}

	if cfg.Site.ContentDir != "" {
		h.Sync = api.NewSyncController(h)
		if st := h.Sync.Run(); st != nil && st.Error != "" {
			log.WithField("dir", cfg.Site.ContentDir).Fatal("content import failed: " + st.Error)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		h.Sync.Start(ctx, time.Duration(cfg.Site.SyncInterval)*time.Second)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LogrusMiddleware(log.StandardLogger()))
	h.RegisterRoutes(router)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
