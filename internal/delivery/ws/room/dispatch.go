package ws_room

import (
	"context"
	"errors"

	usecase_rating "github.com/am1t0/anonymous-meet-vote/internal/usecase/rating"
	usecase_room "github.com/am1t0/anonymous-meet-vote/internal/usecase/room"
)

const (
	RequestCreateRoom   = "create_room"
	RequestJoinRoom     = "join_room"
	RequestSubmitRating = "submit_rating"
	RequestClearRatings = "clear_ratings"
	RequestEndRoom      = "end_room"
)

// Request is the inbound envelope. ID is echoed back in the ack so the
// client can match request and response over the single channel.
type Request struct {
	ID    int64  `json:"id,omitempty"`
	Event string `json:"event"`
	Code  string `json:"code,omitempty"`
	Value int    `json:"value,omitempty"`
}

// Ack goes to the originating caller only, never broadcast.
type Ack struct {
	ID    int64  `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

const (
	msgRoomNotFound     = "Room not found"
	msgInvalidRating    = "Invalid rating"
	msgOnlyCreatorClear = "Only creator can clear"
	msgOnlyCreatorEnd   = "Only creator can end"
	msgUnknownEvent     = "Unknown event"
	msgInternal         = "Internal error"
)

func (h *Hub) ack(client *Client, req Request, a Ack) {
	a.ID = req.ID
	h.sendTo(client, Event{Type: EventAck, Payload: a})
}

// dispatch routes one inbound request. Mutations complete and their
// broadcast is queued before the caller's ack, so a client always sees
// the effect of its own request no later than the ack.
func (h *Hub) dispatch(client *Client, req Request) {
	ctx := context.Background()

	switch req.Event {
	case RequestCreateRoom:
		h.createRoom(ctx, client, req)
	case RequestJoinRoom:
		h.joinRoom(ctx, client, req)
	case RequestSubmitRating:
		h.submitRating(ctx, client, req)
	case RequestClearRatings:
		h.clearRatings(ctx, client, req)
	case RequestEndRoom:
		h.endRoom(ctx, client, req)
	default:
		h.logger.Warn("unknown event", "conn", client.id, "event", req.Event)
		h.ack(client, req, Ack{OK: false, Error: msgUnknownEvent})
	}
}

func (h *Hub) createRoom(ctx context.Context, client *Client, req Request) {
	code, err := h.rooms.Create(ctx, client.id)
	if err != nil {
		h.logger.Error("failed to create room", "conn", client.id, "error", err)
		h.ack(client, req, Ack{OK: false, Error: msgInternal})
		return
	}

	h.Subscribe(client, code)
	h.logger.Info("room created", "room", code, "conn", client.id)
	h.ack(client, req, Ack{OK: true, Code: string(code)})
}

func (h *Hub) joinRoom(ctx context.Context, client *Client, req Request) {
	code, err := h.rooms.Lookup(ctx, req.Code)
	if err != nil {
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	}

	h.Subscribe(client, code)
	h.ack(client, req, Ack{OK: true, Code: string(code)})

	// A join is not a room-wide event: the current stats go to the
	// joiner alone.
	if s, err := h.rooms.Stats(ctx, code); err == nil {
		h.sendTo(client, roomUpdate(code, s))
	}
}

func (h *Hub) submitRating(ctx context.Context, client *Client, req Request) {
	code, err := h.rooms.Lookup(ctx, req.Code)
	if err != nil {
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	}

	s, err := h.ratings.Submit(ctx, code, client.id, req.Value)
	switch {
	case errors.Is(err, usecase_rating.ErrInvalidRating):
		h.ack(client, req, Ack{OK: false, Error: msgInvalidRating})
		return
	case errors.Is(err, usecase_room.ErrResourceNotFound):
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	case err != nil:
		h.logger.Error("failed to submit rating", "room", code, "conn", client.id, "error", err)
		h.ack(client, req, Ack{OK: false, Error: msgInternal})
		return
	}

	h.BroadcastToRoom(code, roomUpdate(code, s))
	h.ack(client, req, Ack{OK: true})
}

func (h *Hub) clearRatings(ctx context.Context, client *Client, req Request) {
	code, err := h.rooms.Lookup(ctx, req.Code)
	if err != nil {
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	}

	s, err := h.ratings.Clear(ctx, code, client.id)
	switch {
	case errors.Is(err, usecase_room.ErrNotCreator):
		h.ack(client, req, Ack{OK: false, Error: msgOnlyCreatorClear})
		return
	case errors.Is(err, usecase_room.ErrResourceNotFound):
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	case err != nil:
		h.logger.Error("failed to clear ratings", "room", code, "conn", client.id, "error", err)
		h.ack(client, req, Ack{OK: false, Error: msgInternal})
		return
	}

	h.BroadcastToRoom(code, roomUpdate(code, s))
	h.ack(client, req, Ack{OK: true})
}

func (h *Hub) endRoom(ctx context.Context, client *Client, req Request) {
	code, err := h.rooms.Lookup(ctx, req.Code)
	if err != nil {
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	}

	isCreator, err := h.rooms.IsCreator(ctx, code, client.id)
	if err != nil {
		h.ack(client, req, Ack{OK: false, Error: msgRoomNotFound})
		return
	}
	if !isCreator {
		h.ack(client, req, Ack{OK: false, Error: msgOnlyCreatorEnd})
		return
	}

	// Terminal event reaches every subscriber before the code stops
	// resolving.
	h.BroadcastToRoom(code, roomEnded(code))
	if err := h.rooms.ForceFree(ctx, code); err != nil {
		h.logger.Error("failed to free room", "room", code, "error", err)
		h.ack(client, req, Ack{OK: false, Error: msgInternal})
		return
	}
	h.DropRoom(code)

	h.logger.Info("room ended", "room", code, "conn", client.id)
	h.ack(client, req, Ack{OK: true})
}
