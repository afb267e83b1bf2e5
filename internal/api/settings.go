package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/agls"
	"github.com/kovi/agls/internal/audit"
	"gorm.io/gorm"
)

func settingsResponse(s *agls.Settings) SettingsResponse {
	return SettingsResponse{
		Form:      agls.SettingsForm(),
		Values:    s,
		Creator:   s.CreatorString(),
		Publisher: s.PublisherString(),
	}
}

// GetAGLSSettings handles GET /_/api/v1/settings/agls
func (h *Handler) GetAGLSSettings(c *gin.Context) {
	s, err := h.CurrentSettings(h.DB)
	if err != nil {
		logger(c).WithError(err).Error("Failed to load AGLS settings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, settingsResponse(s))
}

// UpdateAGLSSettings handles PUT /_/api/v1/settings/agls. Only the supplied fields change.
func (h *Handler) UpdateAGLSSettings(c *gin.Context) {
	var req SettingsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var saved *agls.Settings
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		s, err := h.CurrentSettings(tx)
		if err != nil {
			return err
		}

		req.Creator.apply(&s.Creator)
		req.Publisher.apply(&s.Publisher)
		if req.PublisherSameAsCreator != nil {
			s.PublisherSameAsCreator = *req.PublisherSameAsCreator
		}

		// Save runs the BeforeSave hook for both the first insert and later updates
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		saved = s
		return nil
	})

	if err != nil {
		logger(c).WithError(err).Error("Failed to save AGLS settings")
		h.Audit.WithContext(c).Failure(audit.ActionSettingsUpdate, "agls", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Audit.WithContext(c).Success(audit.ActionSettingsUpdate, "agls",
		"creator", saved.CreatorString(),
		"publisher", saved.PublisherString())
	c.JSON(http.StatusOK, settingsResponse(saved))
}
