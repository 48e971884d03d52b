package frontend

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/janpfeifer/LiXi/internal/lixi"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// GlobalClientState manages the connection, the board being played and the result popup.
type GlobalClientState struct {
	Board *lixi.Board // Public view: closed envelopes have no amount
	Popup lixi.Popup
	Error string
	Conn  *websocket.Conn

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

func (s *GlobalClientState) Notify() {
	klog.V(1).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Listeners: make(map[string]func()),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

// wsURL returns the WebSocket endpoint of the server that served the page.
func wsURL() string {
	u := app.Window().URL()
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://%s/ws", scheme, u.Host)
}

// ConnectWS connects to the server, which deals a new board for this screen.
func (s *GlobalClientState) ConnectWS() error {
	s.Disconnect()
	s.Error = ""

	url := wsURL()
	klog.Infof("ConnectWS: Connecting to %s", url)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		klog.Errorf("ConnectWS: Dial failed: %v", err)
		return fmt.Errorf("dial failed: %w", err)
	}

	s.Conn = conn
	klog.Infof("ConnectWS: Connected. Starting read loop.")
	go s.readLoop(conn)
	return nil
}

// Disconnect drops the current board, if any.
func (s *GlobalClientState) Disconnect() {
	if s.Conn != nil {
		klog.Infof("Disconnect: Closing existing connection")
		s.Conn.Close(websocket.StatusNormalClosure, "screen closed")
		s.Conn = nil
	}
	s.Board = nil
	s.Popup.Close()
}

func (s *GlobalClientState) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	klog.Infof("readLoop: started")
	for {
		var msg lixi.WsMessage
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			klog.Errorf("readLoop: WS read error: %v", err)
			break
		}

		klog.V(1).Infof("readLoop: received message type: %s", msg.Type)
		if s.Conn != conn {
			// Stale connection from a previous screen.
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *GlobalClientState) handleMessage(msg lixi.WsMessage) {
	p, err := msg.Parse()
	if err != nil {
		klog.Errorf("handleMessage: Failed to parse %s message: %v", msg.Type, err)
		return
	}

	switch m := p.(type) {
	case *lixi.BoardMessage:
		klog.Infof("handleMessage: Board %s: %d envelopes", m.Board.ID, len(m.Board.Envelopes))
		s.Board = &m.Board
		switch {
		case m.Selected != nil:
			s.Popup = lixi.Popup{Phase: lixi.PopupOpen, Slot: *m.Selected}
		case s.Popup.Phase == lixi.PopupPending && !s.isRevealed(s.Popup.Slot):
			// The server refused our open.
			s.Popup.Close()
		}
		s.Error = ""
		s.Notify()

	case *lixi.RevealedMessage:
		if s.Board == nil || !s.Board.Apply(m.Envelope) {
			klog.Errorf("handleMessage: Unexpected revealed envelope %+v", m.Envelope)
			return
		}
		klog.Infof("handleMessage: Slot %d revealed, %d remaining", m.Envelope.Slot, m.Remaining)
		s.Notify()

	case *lixi.ErrorMessage:
		klog.Errorf("handleMessage: Server error: %s", m.Message)
		s.Error = m.Message
		s.Notify()

	default:
		klog.Errorf("handleMessage: Unexpected message type %s", msg.Type)
	}
}

func (s *GlobalClientState) isRevealed(slot int) bool {
	if s.Board == nil {
		return false
	}
	e, ok := s.Board.Envelope(slot)
	return ok && e.Revealed
}

// CanOpen reports whether the envelope at slot may be opened now.
func (s *GlobalClientState) CanOpen(slot int) bool {
	if s.Board == nil || s.Popup.Busy() {
		return false
	}
	e, ok := s.Board.Envelope(slot)
	return ok && !e.Revealed
}

// Open asks the server to open the envelope at slot. The popup stays pending
// until the server reveals the envelope.
func (s *GlobalClientState) Open(slot int) bool {
	if !s.CanOpen(slot) || !s.Popup.Begin(slot) {
		return false
	}
	if err := s.send(lixi.MsgTypeOpen, lixi.OpenMessage{Slot: slot}); err != nil {
		klog.Errorf("Open: %v", err)
		s.Popup.Close()
		return false
	}
	return true
}

// PendingReveal returns the envelope flipped by the server whose result isn't displayed yet.
func (s *GlobalClientState) PendingReveal() (lixi.Envelope, bool) {
	if s.Popup.Phase != lixi.PopupPending || !s.isRevealed(s.Popup.Slot) {
		return lixi.Envelope{}, false
	}
	return s.Board.Envelope(s.Popup.Slot)
}

// ShowResult opens the popup on the pending envelope.
func (s *GlobalClientState) ShowResult() (lixi.Envelope, bool) {
	e, ok := s.PendingReveal()
	if !ok {
		return lixi.Envelope{}, false
	}
	s.Popup.Show()
	return e, true
}

// Selected returns the envelope displayed in the popup, if any.
func (s *GlobalClientState) Selected() (lixi.Envelope, bool) {
	if s.Popup.Phase != lixi.PopupOpen || s.Board == nil {
		return lixi.Envelope{}, false
	}
	return s.Board.Envelope(s.Popup.Slot)
}

// ClosePopup dismisses the result popup and tells the server.
func (s *GlobalClientState) ClosePopup() {
	if !s.Popup.Busy() {
		return
	}
	s.Popup.Close()
	if err := s.send(lixi.MsgTypeClose, nil); err != nil {
		klog.Errorf("ClosePopup: %v", err)
	}
}

func (s *GlobalClientState) send(msgType lixi.MessageType, payload any) error {
	if s.Conn == nil {
		return fmt.Errorf("not connected")
	}
	msg, err := lixi.NewWsMessage(msgType, payload)
	if err != nil {
		return fmt.Errorf("failed to create %s message: %w", msgType, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	if err := wsjson.Write(ctx, s.Conn, msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", msgType, err)
	}
	return nil
}
