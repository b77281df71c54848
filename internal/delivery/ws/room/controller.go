package ws_room

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
)

type Controller struct {
	hub    *Hub
	logger *slog.Logger

	upgrader websocket.Upgrader
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub:    hub,
		logger: slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Room-code possession is the only access control.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.serve)
}

// serve upgrades the connection and assigns it an identity. A presenter
// that created its room over REST passes the issued token back here so
// the socket is bound to the same identity; everyone else gets a fresh
// one.
func (c *Controller) serve(ctx *gin.Context) {
	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	id := model.ConnID(uuid.NewString())
	if token := ctx.Query("token"); token != "" {
		if parsed, err := uuid.Parse(token); err == nil {
			id = model.ConnID(parsed.String())
		}
	}

	client := newClient(c.hub, conn, id)
	c.hub.register <- client

	go client.writePump()
	go client.readPump()
}
