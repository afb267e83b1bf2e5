package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/agls"
	"github.com/sirupsen/logrus"
)

var (
	// Primary identifiers
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
	IsDirty   = false

	cachedBuildInfo *debug.BuildInfo
	buildSettings   map[string]string
)

func InitializeVersionInfo(log *logrus.Entry) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Errorf("failed to read build info: binary was built without debug info")
	}
	cachedBuildInfo = info

	buildSettings = make(map[string]string)
	for _, s := range info.Settings {
		buildSettings[s.Key] = s.Value
	}

	if val, ok := buildSettings["vcs.revision"]; ok {
		Commit = val
		if Version == "dev" && len(val) >= 7 {
			Version = val[:7]
		}
	} else {
		log.Warn("Build missing 'vcs.revision' - check if -buildvcs=true was used")
	}

	if val, ok := buildSettings["vcs.time"]; ok {
		BuildDate = val
	} else {
		BuildDate = time.Now().Format(time.RFC3339)
	}

	if val, ok := buildSettings["vcs.modified"]; ok {
		IsDirty = (val == "true")
	}

	log.WithFields(logrus.Fields{
		"version": Version,
		"commit":  Commit,
		"build":   BuildDate,
		"dirty":   IsDirty,
		"go":      info.GoVersion,
	}).Info("AGLS metadata service initialized")

	return nil
}

// GetSystem handles GET /_/api/v1/system
func (h *Handler) GetSystem(c *gin.Context) {
	goVersion := ""
	if cachedBuildInfo != nil {
		goVersion = cachedBuildInfo.GoVersion
	}

	c.JSON(http.StatusOK, gin.H{
		"version":    Version,
		"commit":     Commit,
		"build_date": BuildDate,
		"go_version": goVersion,
		"is_dirty":   IsDirty,
		"agls": gin.H{
			"properties":         agls.PropertyNames(),
			"unknown_properties": h.Config.UnknownProperties(),
		},
		"config": h.Config,
	})
}
