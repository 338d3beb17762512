package host

import (
	"encoding/json"
	"fmt"

	"github.com/zeusync/ballchaser/internal/core/chat"
	"github.com/zeusync/ballchaser/internal/core/controls"
	"github.com/zeusync/ballchaser/internal/core/render"
	"github.com/zeusync/ballchaser/internal/core/world"
)

// Message types of the agent protocol.
const (
	TypeFieldInfo = "field_info"
	TypeTick      = "tick"

	TypeReady    = "ready"
	TypeControls = "controls"
	TypeError    = "error"
)

// Request is a message from the game host.
type Request struct {
	Type      string           `json:"type"`
	FieldInfo *world.FieldInfo `json:"field_info,omitempty"`
	Packet    *world.Snapshot  `json:"packet,omitempty"`
}

// Reply is the single answer to a Request.
type Reply struct {
	Type     string             `json:"type"`
	Session  string             `json:"session,omitempty"`
	Controls *controls.Command  `json:"controls,omitempty"`
	Overlay  []render.Primitive `json:"overlay,omitempty"`
	Chat     []chat.QuickChat   `json:"chat,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// DecodeRequest parses and checks one inbound message.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	switch req.Type {
	case TypeFieldInfo:
		if req.FieldInfo == nil {
			return Request{}, fmt.Errorf("%w: field_info without payload", ErrMalformedMessage)
		}
	case TypeTick:
		if req.Packet == nil {
			return Request{}, fmt.Errorf("%w: tick without packet", ErrMalformedMessage)
		}
	default:
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownMessage, req.Type)
	}
	return req, nil
}

func errorReply(err error) Reply {
	return Reply{Type: TypeError, Error: err.Error()}
}
