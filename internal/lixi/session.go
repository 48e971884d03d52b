package lixi

// PopupPhase is the phase of the result popup of a screen.
type PopupPhase int

const (
	PopupClosed  PopupPhase = iota // No popup, envelopes can be opened
	PopupPending                   // An envelope was flipped, popup not shown yet
	PopupOpen                      // The result of Slot is displayed
)

func (p PopupPhase) String() string {
	switch p {
	case PopupClosed:
		return "closed"
	case PopupPending:
		return "pending"
	case PopupOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Popup is the selection state of a screen: at most one envelope is being
// displayed at any time. The zero value is a closed popup.
type Popup struct {
	Phase PopupPhase
	Slot  int // Only meaningful when Phase != PopupClosed
}

// Busy reports whether an envelope is pending or displayed.
func (p *Popup) Busy() bool {
	return p.Phase != PopupClosed
}

// Begin moves a closed popup to pending for slot.
func (p *Popup) Begin(slot int) bool {
	if p.Busy() {
		return false
	}
	p.Phase = PopupPending
	p.Slot = slot
	return true
}

// Show opens a pending popup. It returns the slot being displayed.
func (p *Popup) Show() (int, bool) {
	if p.Phase != PopupPending {
		return 0, false
	}
	p.Phase = PopupOpen
	return p.Slot, true
}

// Close dismisses the popup, whatever its phase.
func (p *Popup) Close() {
	*p = Popup{}
}

// Session is a board plus the popup state of the screen showing it.
// It is owned by a single goroutine.
type Session struct {
	Board *Board
	Popup Popup
}

// NewSession deals a new board.
func NewSession(rng RNG) *Session {
	return &Session{Board: NewBoard(rng)}
}

// Reveal opens the envelope at slot and selects it.
//
// It is a no-op returning false if the envelope is already revealed, if the
// slot doesn't exist or if another result is still being displayed.
func (s *Session) Reveal(slot int) (Envelope, bool) {
	if s.Popup.Busy() {
		return Envelope{}, false
	}
	e, ok := s.Board.reveal(slot)
	if !ok {
		return Envelope{}, false
	}
	s.Popup = Popup{Phase: PopupOpen, Slot: slot}
	return e, true
}

// Selected returns the envelope displayed in the popup, if any.
func (s *Session) Selected() (Envelope, bool) {
	if s.Popup.Phase != PopupOpen {
		return Envelope{}, false
	}
	return s.Board.Envelope(s.Popup.Slot)
}

// Close dismisses the result popup.
func (s *Session) Close() {
	s.Popup.Close()
}
