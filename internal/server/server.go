package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/janpfeifer/LiXi/internal/config"
	"github.com/janpfeifer/LiXi/internal/frontend"
	"github.com/janpfeifer/LiXi/internal/lixi"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// confettiScript provides window.confetti to the front end.
const confettiScript = "https://cdn.jsdelivr.net/npm/canvas-confetti@1.9.3/dist/confetti.browser.min.js"

// ServerState holds the boards of all connected screens, keyed by board ID.
type ServerState struct {
	Address string // Address the server is listening on, set once started.

	// NewRNG creates the random source for a new board. If nil, lixi.DefaultRNG is used.
	NewRNG func() lixi.RNG

	mu       sync.RWMutex
	Sessions map[string]*lixi.Session
}

// NewServerState creates an empty server state.
func NewServerState() *ServerState {
	return &ServerState{
		Sessions: make(map[string]*lixi.Session),
	}
}

func (s *ServerState) rng() lixi.RNG {
	if s.NewRNG == nil {
		return lixi.DefaultRNG
	}
	return s.NewRNG()
}

// NumSessions returns the number of boards currently being played.
func (s *ServerState) NumSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Sessions)
}

// Handler returns the HTTP handler serving the WebSocket endpoint, the static
// assets from webDir and the go-app UI.
func (s *ServerState) Handler(webDir string) http.Handler {
	// Register go-app routes so the server knows how to prerender them
	frontend.InitState()
	frontend.RegisterRoutes()

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "LiXi",
		ShortName:   "Lì Xì",
		Description: "LiXi: open a lucky money envelope",
		Lang:        "vi",
		Styles: []string{
			"/web/css/main.css",
		},
		Scripts: []string{
			confettiScript,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	mux.Handle("/", h)
	return mux
}

// Run starts the server and blocks until the context is canceled.
// Once listening, the server state is sent to started, if not nil.
func Run(ctx context.Context, cfg config.Config, started chan<- *ServerState) error {
	state := NewServerState()

	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	state.Address = listener.Addr().String()

	srv := &http.Server{
		Handler: state.Handler(cfg.WebDir),
	}

	serveErr := make(chan error, 1)
	go func() {
		klog.Infof("Server started on %s", state.Address)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- state
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}

// HandleWS deals a new board for the connecting screen and plays it until
// the connection is closed.
func (s *ServerState) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		klog.Errorf("HandleWS: accept failed: %v", err)
		return
	}
	defer conn.CloseNow()
	ctx := r.Context()

	session := lixi.NewSession(s.rng())
	boardID := session.Board.ID
	s.mu.Lock()
	s.Sessions[boardID] = session
	boardMsg := lixi.NewBoardMessage(session)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.Sessions, boardID)
		s.mu.Unlock()
		klog.Infof("HandleWS: board %s dropped", boardID)
	}()
	klog.Infof("HandleWS: new board %s for %s", boardID, r.RemoteAddr)
	klog.V(2).Infof("HandleWS: %s", session.Board)

	if err := send(ctx, conn, lixi.MsgTypeBoard, boardMsg); err != nil {
		klog.Errorf("HandleWS: board %s: %v", boardID, err)
		return
	}

	for {
		var msg lixi.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				klog.V(1).Infof("HandleWS: board %s: connection closed", boardID)
			default:
				klog.Warningf("HandleWS: board %s: read error: %v", boardID, err)
			}
			return
		}
		klog.V(1).Infof("HandleWS: board %s: received message type: %s", boardID, msg.Type)
		if err := s.handleMessage(ctx, conn, session, msg); err != nil {
			klog.Errorf("HandleWS: board %s: %v", boardID, err)
			return
		}
	}
}

// handleMessage applies one client message to the session.
// Only failures to write back to the client are returned.
func (s *ServerState) handleMessage(ctx context.Context, conn *websocket.Conn, session *lixi.Session, msg lixi.WsMessage) error {
	p, err := msg.Parse()
	if err != nil {
		return sendError(ctx, conn, fmt.Sprintf("invalid message: %v", err))
	}

	switch m := p.(type) {
	case *lixi.OpenMessage:
		s.mu.Lock()
		e, ok := session.Reveal(m.Slot)
		remaining := session.Board.Remaining()
		boardMsg := lixi.NewBoardMessage(session)
		s.mu.Unlock()
		if !ok {
			// Nothing changed: resync the client.
			klog.V(1).Infof("Board %s: open of slot %d ignored (popup %s)", session.Board.ID, m.Slot, session.Popup.Phase)
			return send(ctx, conn, lixi.MsgTypeBoard, boardMsg)
		}
		klog.Infof("Board %s: slot %d opened: %d (%s), %d remaining",
			session.Board.ID, e.Slot, e.Amount, lixi.Classify(e.Amount), remaining)
		return send(ctx, conn, lixi.MsgTypeRevealed, lixi.RevealedMessage{Envelope: e, Remaining: remaining})

	case *lixi.CloseMessage:
		s.mu.Lock()
		session.Close()
		s.mu.Unlock()
		return nil

	default:
		return sendError(ctx, conn, fmt.Sprintf("unexpected message type: %s", msg.Type))
	}
}

func send(ctx context.Context, conn *websocket.Conn, msgType lixi.MessageType, payload any) error {
	msg, err := lixi.NewWsMessage(msgType, payload)
	if err != nil {
		return err
	}
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", msgType, err)
	}
	return nil
}

func sendError(ctx context.Context, conn *websocket.Conn, message string) error {
	klog.Warningf("Sending error to client: %s", message)
	return send(ctx, conn, lixi.MsgTypeError, lixi.ErrorMessage{Message: message})
}
