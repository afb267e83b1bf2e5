package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(pageTemplate)

	api := r.Group("/_/api/v1")
	settings := api.Group("/settings")
	{
		settings.GET("/agls", h.GetAGLSSettings)
		settings.PUT("/agls", h.UpdateAGLSSettings)
	}

	pages := api.Group("/pages")
	{
		pages.GET("", h.ListPages)
		pages.POST("", h.CreatePage)
		pages.GET("/:id", h.GetPageByID)
		pages.PATCH("/:id", h.PatchPage)
		pages.GET("/:id/agls", h.GetPageAGLS)
	}

	contentGroup := api.Group("/content")
	{
		contentGroup.GET("/sync", h.GetSyncStatus)
		contentGroup.POST("/sync", h.TriggerSync)
	}

	api.GET("/system", h.GetSystem)

	r.NoRoute(h.defaultHandler)
}

/*
defaultHandler is the NoRoute handler for page requests.
- The User URL (/*path): renders the stored page with its meta tags.
- The API URL (/_/api/...): anything not routed above is a 404.
*/
func (h *Handler) defaultHandler(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/_/api") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
		h.ServePage(c)
		return
	}

	c.Status(http.StatusMethodNotAllowed)
}
