package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/audit"
	"github.com/kovi/agls/internal/content"
	"github.com/kovi/agls/middleware"
	"github.com/sirupsen/logrus"
)

var errPageNotFound = errors.New("page not found")

func logger(c *gin.Context) *logrus.Entry {
	return middleware.Logger(c)
}

func (h *Handler) pageByID(c *gin.Context) (*content.Page, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, errPageNotFound
	}
	var p content.Page
	r := h.DB.Limit(1).Find(&p, uint(id))
	if r.Error != nil {
		return nil, r.Error
	}
	if r.RowsAffected == 0 {
		return nil, errPageNotFound
	}
	return &p, nil
}

func (h *Handler) abortPageError(c *gin.Context, err error) {
	if errors.Is(err, errPageNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	logger(c).WithError(err).Error("Page lookup failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}

// ListPages handles GET /_/api/v1/pages
func (h *Handler) ListPages(c *gin.Context) {
	var pages []content.Page
	q := h.DB.Order("url_segment ASC")
	if t := c.Query("type"); t != "" {
		q = q.Where("page_type = ?", t)
	}
	if err := q.Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, pages)
}

// GetPageByID handles GET /_/api/v1/pages/:id
func (h *Handler) GetPageByID(c *gin.Context) {
	p, err := h.pageByID(c)
	if err != nil {
		h.abortPageError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePage handles POST /_/api/v1/pages
func (h *Handler) CreatePage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.URL == nil || req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url and title are required"})
		return
	}

	if existing, err := h.GetPage(*req.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	} else if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A page already exists at this URL"})
		return
	}

	p := req.toPage()
	if err := h.DB.Create(&p).Error; err != nil {
		h.Audit.WithContext(c).Failure(audit.ActionPageCreate, p.URLSegment, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Audit.WithContext(c).Success(audit.ActionPageCreate, p.URLSegment)
	c.JSON(http.StatusCreated, p)
}

// PatchPage handles PATCH /_/api/v1/pages/:id
func (h *Handler) PatchPage(c *gin.Context) {
	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
		return
	}

	p, err := h.pageByID(c)
	if err != nil {
		h.abortPageError(c, err)
		return
	}

	if req.URL != nil {
		other, err := h.GetPage(*req.URL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if other != nil && other.ID != p.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "A page already exists at this URL"})
			return
		}
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := h.DB.Model(p).Updates(updates).Error; err != nil {
			h.Audit.WithContext(c).Failure(audit.ActionPageUpdate, p.URLSegment, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := h.DB.First(p, p.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	h.Audit.WithContext(c).Success(audit.ActionPageUpdate, p.URLSegment)
	c.JSON(http.StatusOK, p)
}

// GetPageAGLS handles GET /_/api/v1/pages/:id/agls
func (h *Handler) GetPageAGLS(c *gin.Context) {
	p, err := h.pageByID(c)
	if err != nil {
		h.abortPageError(c, err)
		return
	}

	settings, err := h.CurrentSettings(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	page, _ := h.aglsPage(p, settings)
	c.JSON(http.StatusOK, AGLSResponse{
		Page:       p,
		Properties: page.Properties(),
		Tags:       h.renderer().RenderTags("", page),
	})
}
