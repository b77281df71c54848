package model

import "time"

// RoomCode is the public, human-typable room identifier.
type RoomCode string

const EmptyRoomCode RoomCode = ""

// ConnID identifies a single live connection. It is assigned by the
// transport on upgrade and never reused, so it doubles as the
// creator's capability token.
type ConnID string

const EmptyConnID ConnID = ""

type Rating = int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// Stats is derived from a room's ratings and never stored.
type Stats struct {
	Count        int     `json:"count"`
	Avg          float64 `json:"avg"`
	Distribution [5]int  `json:"distribution"`
}

type Room struct {
	Code      RoomCode
	CreatorID ConnID
	Ratings   map[ConnID]Rating
	CreatedAt time.Time
}

func NewRoom(code RoomCode, creator ConnID) *Room {
	return &Room{
		Code:      code,
		CreatorID: creator,
		Ratings:   make(map[ConnID]Rating),
		CreatedAt: time.Now(),
	}
}
