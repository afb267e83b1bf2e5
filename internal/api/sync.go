package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/audit"
	"github.com/kovi/agls/internal/content"
)

// SyncController re-imports the content directory into the page store.
type SyncController struct {
	handler   *Handler
	isRunning int32         // Atomic flag to prevent concurrent runs
	trigger   chan struct{} // Channel to request a sync
	last      atomic.Pointer[SyncStatus]
}

// SyncStatus describes the most recent import run.
type SyncStatus struct {
	FinishedAt time.Time `json:"finished_at"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Unchanged  int       `json:"unchanged"`
	Skipped    int       `json:"skipped"`
	Error      string    `json:"error,omitempty"`
}

func NewSyncController(h *Handler) *SyncController {
	return &SyncController{
		handler: h,
		trigger: make(chan struct{}, 1), // Buffered so trigger doesn't block
	}
}

// Trigger sends a signal to start a sync as soon as possible
func (sc *SyncController) Trigger() {
	select {
	case sc.trigger <- struct{}{}:
	default:
		// Already a trigger pending, do nothing
	}
}

// Status answers the result of the last completed run, nil before the first one.
func (sc *SyncController) Status() *SyncStatus {
	return sc.last.Load()
}

func (sc *SyncController) Start(ctx context.Context, interval time.Duration) {
	go func() {
		sc.handler.Log.Infof("Sync: background worker started (interval: %v)", interval)

		var tick <-chan time.Time
		if interval > 0 {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-tick:
				// Scheduled run
			case <-sc.trigger:
				sc.handler.Log.Info("Sync: manual trigger received")
			case <-ctx.Done():
				sc.handler.Log.Info("Sync: shutting down")
				return
			}
			sc.Run()
		}
	}()
}

// Run imports the content directory once. It is a no-op while another run is active.
func (sc *SyncController) Run() *SyncStatus {
	if !atomic.CompareAndSwapInt32(&sc.isRunning, 0, 1) {
		return nil
	}
	defer atomic.StoreInt32(&sc.isRunning, 0)

	h := sc.handler
	dir := h.Config.Site.ContentDir
	res, err := content.ImportDir(h.DB, dir, h.Log.WithField("task", "sync"))

	st := &SyncStatus{
		FinishedAt: time.Now().UTC(),
		Created:    res.Created,
		Updated:    res.Updated,
		Unchanged:  res.Unchanged,
		Skipped:    res.Skipped,
	}
	if err != nil {
		st.Error = err.Error()
		h.Log.WithError(err).Error("Sync: content import failed")
		h.Audit.Failure(audit.ActionContentImport, dir, err)
	} else {
		h.Log.WithField("created", res.Created).
			WithField("updated", res.Updated).
			WithField("unchanged", res.Unchanged).
			WithField("skipped", res.Skipped).
			Info("Sync: content import finished")
		h.Audit.Success(audit.ActionContentImport, dir,
			"created", res.Created, "updated", res.Updated, "unchanged", res.Unchanged, "skipped", res.Skipped)
	}

	sc.last.Store(st)
	return st
}

// TriggerSync handles POST /_/api/v1/content/sync
func (h *Handler) TriggerSync(c *gin.Context) {
	if h.Sync == nil || h.Config.Site.ContentDir == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No content directory configured"})
		return
	}
	h.Sync.Trigger()
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "last": h.Sync.Status()})
}

// GetSyncStatus handles GET /_/api/v1/content/sync
func (h *Handler) GetSyncStatus(c *gin.Context) {
	if h.Sync == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": h.Config.Site.ContentDir != "", "last": h.Sync.Status()})
}
