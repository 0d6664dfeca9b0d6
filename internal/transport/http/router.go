package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/transport/http/middleware"
)

//go:embed static/index.html
var indexHTML []byte

// RouterDeps are the handlers NewRouter mounts.
type RouterDeps struct {
	Game           *GameHandler
	WebSocket      http.HandlerFunc
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	{
		api.GET("/state", deps.Game.GetState)
		api.POST("/moves", deps.Game.SelectColumn)
		api.POST("/match", deps.Game.NewMatch)
		api.DELETE("/scores", deps.Game.ResetScores)
		// preflights never reach this, the CORS middleware answers them
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	// origin checks for the socket happen in the upgrader
	if deps.WebSocket != nil {
		router.GET("/ws", gin.WrapF(deps.WebSocket))
	}

	return router
}
