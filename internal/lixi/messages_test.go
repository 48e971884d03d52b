package lixi

import (
	"encoding/json"
	"testing"
)

func TestWsMessageParse(t *testing.T) {
	msg, err := NewWsMessage(MsgTypeOpen, OpenMessage{Slot: 9})
	if err != nil {
		t.Fatalf("NewWsMessage: %v", err)
	}
	p, err := msg.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	open, ok := p.(*OpenMessage)
	if !ok || open.Slot != 9 {
		t.Errorf("Expected OpenMessage{Slot: 9}, got %#v", p)
	}

	// Empty payloads parse into zero values.
	msg, _ = NewWsMessage(MsgTypeClose, nil)
	if p, err := msg.Parse(); err != nil {
		t.Errorf("Parse close: %v", err)
	} else if _, ok := p.(*CloseMessage); !ok {
		t.Errorf("Expected CloseMessage, got %T", p)
	}

	bad := WsMessage{Type: "shuffle"}
	if _, err := bad.Parse(); err == nil {
		t.Errorf("Expected error for unknown message type")
	}
}

func TestBoardMessageHidesAmounts(t *testing.T) {
	s := NewSession(NewSeededRNG(11))
	msg := NewBoardMessage(s)
	if msg.Selected != nil {
		t.Errorf("No envelope should be selected yet")
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Board struct {
			Envelopes []map[string]any `json:"envelopes"`
		} `json:"board"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, e := range decoded.Board.Envelopes {
		if _, found := e["amount"]; found {
			t.Errorf("Closed envelope serialized with an amount: %v", e)
		}
	}

	s.Reveal(4)
	msg = NewBoardMessage(s)
	if msg.Selected == nil || *msg.Selected != 4 {
		t.Errorf("Expected slot 4 selected, got %v", msg.Selected)
	}
	if msg.Board.Envelopes[4].Amount == 0 {
		t.Errorf("Revealed envelope should carry its amount")
	}
}
