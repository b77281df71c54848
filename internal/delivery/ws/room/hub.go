package ws_room

import (
	"context"
	"log/slog"
	"sync"

	"github.com/am1t0/anonymous-meet-vote/internal/model"
	usecase_rating "github.com/am1t0/anonymous-meet-vote/internal/usecase/rating"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

const (
	EventAck        = "ack"
	EventRoomUpdate = "room_update"
	EventRoomEnded  = "room_ended"
)

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type RoomUpdatePayload struct {
	Code         string  `json:"code"`
	Count        int     `json:"count"`
	Avg          float64 `json:"avg"`
	Distribution [5]int  `json:"distribution"`
}

type RoomEndedPayload struct {
	Code string `json:"code"`
}

func roomUpdate(code model.RoomCode, s model.Stats) Event {
	return Event{
		Type: EventRoomUpdate,
		Payload: RoomUpdatePayload{
			Code:         string(code),
			Count:        s.Count,
			Avg:          s.Avg,
			Distribution: s.Distribution,
		},
	}
}

func roomEnded(code model.RoomCode) Event {
	return Event{
		Type:    EventRoomEnded,
		Payload: RoomEndedPayload{Code: string(code)},
	}
}

// Hub bridges live connections to the room and rating usecases. It owns
// the code -> subscriber-set mapping; the room table itself lives behind
// the usecases.
type Hub struct {
	rooms     *usecase_room.Usecase
	ratings   *usecase_rating.Usecase
	logger    *slog.Logger
	readLimit int64

	mu          sync.RWMutex
	clients     map[*Client]bool
	subscribers map[model.RoomCode]map[*Client]bool

	register   chan *Client
	unregister chan *Client
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func WithReadLimit(limit int64) HubOption {
	return func(h *Hub) {
		if limit > 0 {
			h.readLimit = limit
		}
	}
}

func NewHub(rooms *usecase_room.Usecase, ratings *usecase_rating.Usecase, opts ...HubOption) *Hub {
	h := &Hub{
		rooms:       rooms,
		ratings:     ratings,
		logger:      slog.Default(),
		readLimit:   512,
		clients:     make(map[*Client]bool),
		subscribers: make(map[model.RoomCode]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)
		}
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Info("client connected", "conn", client.id)
}

// handleUnregister runs when a client's socket closes. The client may
// already be gone from the hub maps if it was dropped as a slow
// consumer; the room sweep still has to run for its identity.
func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	h.dropClient(client)
	h.mu.Unlock()

	h.logger.Info("client disconnected", "conn", client.id)
	h.cleanupAfter(client.id)
}

// dropClient removes a client from the hub entirely: the clients map
// and every room's subscriber set, then closes its send channel so the
// write pump shuts the socket down. No-op if the client is already
// gone. Callers must hold mu.
func (h *Hub) dropClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for code, set := range h.subscribers {
		delete(set, client)
		if len(set) == 0 {
			delete(h.subscribers, code)
		}
	}
	close(client.send)
}

// cleanupAfter reconciles every live room with a connection that is
// gone: its rating entry is dropped, and a room it created ends for
// everyone still in it. Best effort, nothing to report to.
func (h *Hub) cleanupAfter(id model.ConnID) {
	ctx := context.Background()
	for _, code := range h.rooms.LiveCodes(ctx) {
		if s, removed, err := h.ratings.Drop(ctx, code, id); err == nil && removed {
			h.BroadcastToRoom(code, roomUpdate(code, s))
		}

		isCreator, err := h.rooms.IsCreator(ctx, code, id)
		if err != nil || !isCreator {
			continue
		}
		h.BroadcastToRoom(code, roomEnded(code))
		if err := h.rooms.ForceFree(ctx, code); err != nil {
			h.logger.Error("failed to free room after creator disconnect",
				"room", code, "error", err)
		}
		h.DropRoom(code)
	}
}

// Subscribe adds the client to a room's broadcast group.
func (h *Hub) Subscribe(client *Client, code model.RoomCode) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[code]; !ok {
		h.subscribers[code] = make(map[*Client]bool)
	}
	h.subscribers[code][client] = true
}

// AnnounceRoomEnded broadcasts the terminal event and forgets the
// room's broadcast group. The REST surface uses it when a presenter
// ends the room over HTTP.
func (h *Hub) AnnounceRoomEnded(code model.RoomCode) {
	h.BroadcastToRoom(code, roomEnded(code))
	h.DropRoom(code)
}

// DropRoom forgets a room's broadcast group once the room is gone.
// Subscribers stay connected; their other subscriptions are untouched.
func (h *Hub) DropRoom(code model.RoomCode) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, code)
}

// BroadcastToRoom queues one identical event to every current subscriber
// of the room. A client with a full send buffer is dropped rather than
// allowed to stall the room; the drop evicts it from every room it
// subscribed to, since its send channel is closed and must never be
// written again. Its room sweep runs when the socket closes.
func (h *Hub) BroadcastToRoom(code model.RoomCode, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.subscribers[code] {
		select {
		case client.send <- event:
		default:
			h.logger.Warn("dropping slow client", "conn", client.id, "room", code)
			h.dropClient(client)
		}
	}
}
