// Package net carries committed strokes between pads on the local
// network: a websocket hub on the hosting side, a dialing session on the
// joining side, and mDNS to find each other.
package net

import "inkpad/internal/state"

type MessageType string

const (
	MsgDraw  MessageType = "draw"
	MsgClear MessageType = "clear"
)

// Message is one wire frame. Draw carries a stroke; clear carries the
// owner whose strokes should be dropped ("all" wipes the board).
type Message struct {
	Type   MessageType   `json:"type"`
	Stroke *state.Stroke `json:"stroke,omitempty"`
	Owner  string        `json:"owner_id,omitempty"`
}
