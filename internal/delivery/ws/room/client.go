package ws_room

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

// Client is one live connection. Its id is assigned at upgrade time,
// never reused, and is the only identity the rest of the system sees.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
	id   model.ConnID
}

func newClient(hub *Hub, conn *websocket.Conn, id model.ConnID) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan Event, sendBufferSize),
		id:   id,
	}
}

// sendTo queues an event for a single client, caller-only traffic such
// as acks and the private stats snapshot on join. A client already
// dropped by the hub is silently skipped.
func (h *Hub) sendTo(client *Client, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	select {
	case client.send <- event:
	default:
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("read error", "conn", c.id, "error", err)
			}
			return
		}
		c.hub.dispatch(c, req)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
