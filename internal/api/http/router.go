package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lgame/internal/api/ws"
	"lgame/internal/config"
	"lgame/internal/match"
)

func NewRouter(mgr *match.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- MATCH ENDPOINTS ---
	r.POST("/create-match", CreateMatchHandler(mgr))
	r.GET("/state", StateHandler(mgr))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(mgr))
	r.POST("/move", MoveHandler(mgr))
	r.POST("/move-bot", MoveBotHandler(mgr))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/search", GetConfigHandler(cfg))

	// API docs: `swag init -g cmd/server/main.go` writes a docs package that
	// mounts at /swagger/*any through gin-swagger. Not generated in this tree.

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
