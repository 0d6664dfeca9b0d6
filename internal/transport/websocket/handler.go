package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
	"github.com/iamasit07/4-in-a-row/hotseat/pkg/uid"
	"github.com/iamasit07/4-in-a-row/hotseat/pkg/useragent"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Driver is the part of game.Driver the socket needs.
type Driver interface {
	Submit(ctx context.Context, cmd game.Command) error
	Latest() game.Snapshot
}

type Handler struct {
	ConnManager *ConnectionManager
	Driver      Driver
	Upgrader    websocket.Upgrader
}

// NewHandler accepts same-origin pages and the listed origins.
func NewHandler(cm *ConnectionManager, driver Driver, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager: cm,
		Driver:      driver,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		log.Warn().Str("component", "ws").Str("origin", origin).Msg("origin not allowed")
		return false
	}
}

// HandleWebSocket upgrades the request and serves the socket until the
// browser goes away.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Str("component", "ws").Err(err).Msg("upgrade error")
		return
	}

	h.handleConnection(r.Context(), conn, useragent.Describe(r), useragent.ClientIP(r))
}

func (h *Handler) handleConnection(ctx context.Context, conn *websocket.Conn, device, ip string) {
	id := uid.NewConnectionID()
	h.ConnManager.AddConnection(id, conn)
	log.Info().Str("component", "ws").Str("conn_id", id).Str("device", device).Str("ip", ip).
		Int("open", h.ConnManager.Count()).Msg("connection opened")

	stop := make(chan struct{})
	defer func() {
		close(stop)
		h.ConnManager.RemoveConnection(id)
		log.Info().Str("component", "ws").Str("conn_id", id).Msg("connection closed")
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if err := h.ConnManager.Ping(id); err != nil {
					return
				}
			}
		}
	}()

	// the page draws immediately instead of waiting for the next change
	if err := h.ConnManager.SendMessage(id, stateMessage(h.Driver.Latest())); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Str("component", "ws").Str("conn_id", id).Err(err).Msg("disconnected unexpectedly")
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Str("component", "ws").Str("conn_id", id).Err(err).Msg("invalid message format")
			h.ConnManager.SendMessage(id, errorMessage("invalid message format"))
			continue
		}

		cmd, err := msg.toCommand()
		if err != nil {
			h.ConnManager.SendMessage(id, errorMessage(err.Error()))
			continue
		}

		if err := h.Driver.Submit(ctx, cmd); err != nil {
			if errors.Is(err, game.ErrDriverStopped) {
				h.ConnManager.SendMessage(id, errorMessage("server is shutting down"))
			}
			return
		}
	}
}
