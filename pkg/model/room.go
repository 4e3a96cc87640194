package model

type Room struct {
	ID           int      `json:"id"`
	Category     Category `json:"category"`
	NightlyPrice float64  `json:"nightly_price"`
	Active       bool     `json:"active"`
}

// RoomInput is the unvalidated request to register a room.
type RoomInput struct {
	Category     string  `json:"category" validate:"required,oneof=simple double suite"`
	NightlyPrice float64 `json:"nightly_price" validate:"gte=0"`
}
