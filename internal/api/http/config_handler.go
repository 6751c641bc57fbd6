package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lgame/internal/config"
)

// GetConfigHandler returns the search defaults
// @Summary Get search defaults
// @Description Returns the default and maximum search depth a match may use
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/search [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"depth":      cfg.Search.Depth,
			"maxDepth":   cfg.Search.MaxDepth,
			"cacheLimit": cfg.Search.CacheLimit,
		})
	}
}
