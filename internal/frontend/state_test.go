package frontend

import (
	"testing"

	"github.com/janpfeifer/LiXi/internal/lixi"
)

// newTestState returns a client state holding the public view of a fresh board.
func newTestState(t *testing.T) (*GlobalClientState, *lixi.Session) {
	t.Helper()
	session := lixi.NewSession(lixi.NewSeededRNG(9))
	s := &GlobalClientState{Listeners: make(map[string]func())}
	msg, err := lixi.NewWsMessage(lixi.MsgTypeBoard, lixi.NewBoardMessage(session))
	if err != nil {
		t.Fatal(err)
	}
	s.handleMessage(msg)
	if s.Board == nil {
		t.Fatalf("Board message not applied")
	}
	return s, session
}

func deliver(t *testing.T, s *GlobalClientState, msgType lixi.MessageType, payload any) {
	t.Helper()
	msg, err := lixi.NewWsMessage(msgType, payload)
	if err != nil {
		t.Fatal(err)
	}
	s.handleMessage(msg)
}

func TestClientRevealFlow(t *testing.T) {
	s, session := newTestState(t)
	notified := 0
	s.Listeners["test"] = func() { notified++ }

	if !s.CanOpen(3) {
		t.Fatalf("Slot 3 should be openable")
	}
	// What Open does once the message is on its way.
	s.Popup.Begin(3)
	if s.CanOpen(4) {
		t.Errorf("No envelope can be opened while another is pending")
	}
	if _, ok := s.PendingReveal(); ok {
		t.Errorf("Nothing to show before the server answers")
	}

	e, _ := session.Reveal(3)
	deliver(t, s, lixi.MsgTypeRevealed, lixi.RevealedMessage{Envelope: e, Remaining: session.Board.Remaining()})
	if notified != 1 {
		t.Errorf("Expected 1 notification, got %d", notified)
	}
	if !s.Board.Envelopes[3].Revealed || s.Board.Envelopes[3].Amount != e.Amount {
		t.Errorf("Reveal not applied: %+v", s.Board.Envelopes[3])
	}
	if _, ok := s.Selected(); ok {
		t.Errorf("Popup must wait for the flip animation")
	}

	shown, ok := s.ShowResult()
	if !ok || shown != e {
		t.Fatalf("Expected %+v shown, got %+v (ok=%v)", e, shown, ok)
	}
	if _, ok := s.ShowResult(); ok {
		t.Errorf("The result must be shown only once")
	}
	if selected, ok := s.Selected(); !ok || selected.Slot != 3 {
		t.Errorf("Expected slot 3 selected, got %+v", selected)
	}
	if s.CanOpen(4) {
		t.Errorf("No envelope can be opened while the popup is open")
	}

	s.ClosePopup() // Not connected: only the local state changes.
	if s.Popup.Busy() {
		t.Errorf("Popup should be closed")
	}
	if s.CanOpen(3) {
		t.Errorf("A revealed envelope can't be opened again")
	}
	if !s.CanOpen(4) {
		t.Errorf("Slot 4 should be openable after closing the popup")
	}
}

func TestClientOpenRequiresConnection(t *testing.T) {
	s, _ := newTestState(t)
	if s.Open(0) {
		t.Errorf("Open without a connection should fail")
	}
	if s.Popup.Busy() {
		t.Errorf("A failed open must not leave the popup %s", s.Popup.Phase)
	}
}

func TestClientRejectedOpen(t *testing.T) {
	s, session := newTestState(t)
	s.Popup.Begin(2)

	// The server didn't reveal anything and resyncs the board.
	deliver(t, s, lixi.MsgTypeBoard, lixi.NewBoardMessage(session))
	if s.Popup.Busy() {
		t.Errorf("Popup should be closed after a refused open, got %s", s.Popup.Phase)
	}

	// A resync with a selection restores the popup.
	session.Reveal(6)
	deliver(t, s, lixi.MsgTypeBoard, lixi.NewBoardMessage(session))
	if selected, ok := s.Selected(); !ok || selected.Slot != 6 {
		t.Errorf("Expected slot 6 selected after resync, got %+v (ok=%v)", selected, ok)
	}
}

func TestClientErrors(t *testing.T) {
	s, _ := newTestState(t)
	deliver(t, s, lixi.MsgTypeError, lixi.ErrorMessage{Message: "boom"})
	if s.Error != "boom" {
		t.Errorf("Expected error to be recorded, got %q", s.Error)
	}

	// Reveals of unknown slots are dropped.
	deliver(t, s, lixi.MsgTypeRevealed, lixi.RevealedMessage{Envelope: lixi.Envelope{Slot: 42, Revealed: true}})
	if s.Board.Remaining() != lixi.NumEnvelopes {
		t.Errorf("Unexpected reveal applied")
	}
}

func TestEnvelopePresentation(t *testing.T) {
	if got := envelopeClass(lixi.Envelope{}); got != "envelope" {
		t.Errorf("Unexpected class %q", got)
	}
	if got := envelopeClass(lixi.Envelope{Revealed: true}); got != "envelope flipped" {
		t.Errorf("Unexpected class %q", got)
	}
	if got := staggerStyle(0); got != "0ms" {
		t.Errorf("Unexpected delay %q", got)
	}
	if got := staggerStyle(15); got != "450ms" {
		t.Errorf("Unexpected delay %q", got)
	}
}
