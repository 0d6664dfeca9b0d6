package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/service/game"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 32
)

type client struct {
	conn *websocket.Conn

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex

	send chan ServerMessage
	done chan struct{}
}

func (c *client) write(msg ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

func (c *client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// writePump drains broadcast frames in order, so a slow socket never
// holds up the game loop.
func (c *client) writePump(id string) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				log.Debug().Str("component", "ws").Str("conn_id", id).Err(err).Msg("write failed")
				return
			}
		}
	}
}

// ConnectionManager tracks the open browser sockets. Every socket watches
// the same table, so frames are broadcast to all of them.
type ConnectionManager struct {
	clients map[string]*client
	mu      sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{clients: make(map[string]*client)}
}

// AddConnection registers conn under id and starts its writer.
func (cm *ConnectionManager) AddConnection(id string, conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan ServerMessage, sendBuffer),
		done: make(chan struct{}),
	}

	cm.mu.Lock()
	if old, exists := cm.clients[id]; exists {
		close(old.done)
		old.conn.Close()
	}
	cm.clients[id] = c
	cm.mu.Unlock()

	go c.writePump(id)
}

func (cm *ConnectionManager) RemoveConnection(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if c, exists := cm.clients[id]; exists {
		close(c.done)
		c.conn.Close()
		delete(cm.clients, id)
	}
}

// SendMessage writes msg to one connection directly, bypassing the
// broadcast queue.
func (cm *ConnectionManager) SendMessage(id string, msg ServerMessage) error {
	cm.mu.RLock()
	c, exists := cm.clients[id]
	cm.mu.RUnlock()

	if !exists {
		return nil
	}
	return c.write(msg)
}

func (cm *ConnectionManager) Ping(id string) error {
	cm.mu.RLock()
	c, exists := cm.clients[id]
	cm.mu.RUnlock()

	if !exists {
		return nil
	}
	return c.ping()
}

// BroadcastMessage queues msg for every connection. A connection whose
// queue is full misses the frame; the next state frame supersedes it.
func (cm *ConnectionManager) BroadcastMessage(msg ServerMessage) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for id, c := range cm.clients {
		select {
		case c.send <- msg:
		default:
			log.Debug().Str("component", "ws").Str("conn_id", id).Msg("send queue full, frame dropped")
		}
	}
}

// BroadcastState is a game.Driver snapshot observer.
func (cm *ConnectionManager) BroadcastState(snap game.Snapshot) {
	cm.BroadcastMessage(stateMessage(snap))
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// CloseAll drops every connection, used on shutdown.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for id, c := range cm.clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		close(c.done)
		c.conn.Close()
		delete(cm.clients, id)
	}
}
