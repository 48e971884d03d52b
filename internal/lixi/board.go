package lixi

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Envelope is one slot of the grid.
type Envelope struct {
	Slot     int  `json:"slot"`
	Amount   int  `json:"amount,omitempty"` // Zero in public views until revealed
	Revealed bool `json:"revealed"`
}

// Board holds the envelopes dealt for one screen.
type Board struct {
	ID        string     `json:"id"`
	Envelopes []Envelope `json:"envelopes"`
}

// NewBoard deals the fixed prize distribution into a freshly shuffled board.
func NewBoard(rng RNG) *Board {
	return &Board{
		ID:        uuid.NewString(),
		Envelopes: Assign(PrizeAmounts(), rng),
	}
}

// Envelope returns the envelope at slot.
func (b *Board) Envelope(slot int) (Envelope, bool) {
	if slot < 0 || slot >= len(b.Envelopes) {
		return Envelope{}, false
	}
	return b.Envelopes[slot], true
}

// reveal flips the envelope at slot. It returns false if the slot doesn't
// exist or was already revealed.
func (b *Board) reveal(slot int) (Envelope, bool) {
	if slot < 0 || slot >= len(b.Envelopes) {
		return Envelope{}, false
	}
	e := &b.Envelopes[slot]
	if e.Revealed {
		return *e, false
	}
	e.Revealed = true
	return *e, true
}

// Apply records an envelope revealed elsewhere (by the server) into a
// public view of the board.
func (b *Board) Apply(e Envelope) bool {
	if e.Slot < 0 || e.Slot >= len(b.Envelopes) || !e.Revealed {
		return false
	}
	b.Envelopes[e.Slot] = e
	return true
}

// Remaining returns how many envelopes are still closed.
func (b *Board) Remaining() int {
	count := 0
	for _, e := range b.Envelopes {
		if !e.Revealed {
			count++
		}
	}
	return count
}

// Amounts returns the amounts of all envelopes in slot order.
func (b *Board) Amounts() []int {
	amounts := make([]int, len(b.Envelopes))
	for i, e := range b.Envelopes {
		amounts[i] = e.Amount
	}
	return amounts
}

// View returns a copy of the board safe to send to a client: closed
// envelopes have their amounts erased.
func (b *Board) View() Board {
	view := Board{ID: b.ID, Envelopes: make([]Envelope, len(b.Envelopes))}
	for i, e := range b.Envelopes {
		if !e.Revealed {
			e.Amount = 0
		}
		view.Envelopes[i] = e
	}
	return view
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board %s: remaining=%d, envelopes: ", b.ID, b.Remaining())
	for _, e := range b.Envelopes {
		mark := " "
		if e.Revealed {
			mark = "*"
		}
		fmt.Fprintf(&sb, "%d:%d%s ", e.Slot, e.Amount, mark)
	}
	return sb.String()
}
