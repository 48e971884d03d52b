package lixi

import (
	"encoding/json"
	"fmt"
)

// Message type for WebSocket communication between client and server.
type MessageType string

const (
	MsgTypeBoard    MessageType = "board"    // Server sends the public view of the board
	MsgTypeOpen     MessageType = "open"     // Client wants to open an envelope
	MsgTypeRevealed MessageType = "revealed" // Server reveals an opened envelope
	MsgTypeClose    MessageType = "close"    // Client dismissed the result popup
	MsgTypeError    MessageType = "error"    // Server sends an error message
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload any) (WsMessage, error) {
	if payload == nil {
		return WsMessage{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return WsMessage{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return WsMessage{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the message payload into one of the message types (BoardMessage, OpenMessage, etc.)
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeBoard:
		target = &BoardMessage{}
	case MsgTypeOpen:
		target = &OpenMessage{}
	case MsgTypeRevealed:
		target = &RevealedMessage{}
	case MsgTypeClose:
		target = &CloseMessage{}
	case MsgTypeError:
		target = &ErrorMessage{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// BoardMessage is the payload for MsgTypeBoard
type BoardMessage struct {
	Board    Board `json:"board"`    // Public view: closed envelopes carry no amount
	Selected *int  `json:"selected"` // Slot displayed in the popup, if any
}

// OpenMessage is the payload for MsgTypeOpen
type OpenMessage struct {
	Slot int `json:"slot"`
}

// RevealedMessage is the payload for MsgTypeRevealed
type RevealedMessage struct {
	Envelope  Envelope `json:"envelope"`
	Remaining int      `json:"remaining"` // Envelopes still closed
}

// CloseMessage: empty.
type CloseMessage struct{}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewBoardMessage builds the public state of a session.
func NewBoardMessage(s *Session) BoardMessage {
	msg := BoardMessage{Board: s.Board.View()}
	if e, ok := s.Selected(); ok {
		slot := e.Slot
		msg.Selected = &slot
	}
	return msg
}
