package e2e

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/api"
	"github.com/kovi/agls/internal/audit"
	"github.com/kovi/agls/internal/config"
	"github.com/kovi/agls/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	prevConfigs []*config.Config
)

func PushNewConfig(c *config.Config) {
	prevConfigs = append(prevConfigs, Meta.Config)
	Meta.Config = c
	err := Meta.Config.Finalize()
	if err != nil {
		panic(err)
	}
}

func PopConfig() {
	Meta.Config = prevConfigs[len(prevConfigs)-1]
	prevConfigs = prevConfigs[:len(prevConfigs)-1]
}

// WithConfig swaps the handler config for the duration of a test.
func WithConfig(t *testing.T, fn func(*config.Config)) {
	cfg := testConfig()
	fn(cfg)
	PushNewConfig(cfg)
	t.Cleanup(PopConfig)
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Site.BaseURL = "https://www.example.gov.au"
	cfg.Site.ContentDir = contentDir
	return cfg
}

func setupServer(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	// setup db
	if err := api.AutoMigrate(db); err != nil {
		panic(err)
	}

	auditor := audit.NewAuditorWriter(&auditLog)

	cfg := testConfig()
	if err := cfg.Finalize(); err != nil {
		panic(err)
	}

	// setup router
	router := gin.New()
	router.Use(middleware.LogrusMiddleware(logrus.StandardLogger()))
	Meta = &api.Handler{
		DB:     db,
		Log:    logrus.WithField("module", "api"),
		Config: cfg,
		Audit:  auditor,
	}
	Meta.Sync = api.NewSyncController(Meta)
	Meta.RegisterRoutes(router)
	api.InitializeVersionInfo(Meta.Log)

	return router
}

func removeOldSuites(parent string) error {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return err
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "suite-") {
			if err := os.RemoveAll(filepath.Join(parent, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

var (
	router     *gin.Engine
	server     *httptest.Server
	contentDir string
	auditLog   bytes.Buffer
	db         *gorm.DB
	Meta       *api.Handler
)

func TestMain(m *testing.M) {

	if err := removeOldSuites("."); err != nil {
		panic(err)
	}

	root, err := os.MkdirTemp(".", "suite-*")
	if err != nil {
		panic(err)
	}

	contentDir = filepath.Join(root, "content")
	os.MkdirAll(contentDir, 0o755)

	db, err = config.ConnectDB(filepath.Join(root, "db.sqlite"))
	if err != nil {
		panic(err)
	}

	router = setupServer(db)
	server = httptest.NewServer(router)
	defer server.Close()

	os.Exit(m.Run())
}
