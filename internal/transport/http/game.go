package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

// Driver is the part of game.Driver the REST handlers need.
type Driver interface {
	Submit(ctx context.Context, cmd game.Command) error
	Latest() game.Snapshot
}

type GameHandler struct {
	Driver Driver
}

func NewGameHandler(driver Driver) *GameHandler {
	return &GameHandler{Driver: driver}
}

// GetState returns the latest published snapshot.
func (h *GameHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.Driver.Latest())
}

// SelectColumn queues a click. The reply is the snapshot at the time the
// command was queued; the result shows up in later snapshots.
func (h *GameHandler) SelectColumn(c *gin.Context) {
	var req struct {
		Column *int `json:"column" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}
	h.submit(c, game.Command{Type: game.CmdSelectColumn, Column: *req.Column})
}

func (h *GameHandler) NewMatch(c *gin.Context) {
	h.submit(c, game.Command{Type: game.CmdNewMatch})
}

func (h *GameHandler) ResetScores(c *gin.Context) {
	h.submit(c, game.Command{Type: game.CmdResetScores})
}

func (h *GameHandler) submit(c *gin.Context, cmd game.Command) {
	if err := h.Driver.Submit(c.Request.Context(), cmd); err != nil {
		if errors.Is(err, game.ErrDriverStopped) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server is shutting down"})
			return
		}
		c.JSON(http.StatusRequestTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, h.Driver.Latest())
}
