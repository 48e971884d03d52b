package frontend

import (
	"fmt"
	"time"

	"github.com/janpfeifer/LiXi/internal/lixi"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// RevealDelay is how long the flip animation runs before the result popup shows.
const RevealDelay = 400 * time.Millisecond

// StaggerDelay is the entry animation delay between consecutive envelopes.
const StaggerDelay = 30 * time.Millisecond

// Grid is the screen where envelopes are opened.
type Grid struct {
	app.Compo
	Error string

	armedSlot int // Slot whose popup timer is running, -1 if none
	onUpdate  func()
}

func (g *Grid) OnMount(ctx app.Context) {
	klog.Infof("Grid component: OnMount called")
	g.armedSlot = -1
	if app.IsServer {
		// Prerendering: the board is only dealt for browsers.
		return
	}
	g.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {
			g.Error = State.Error
			g.armReveal(ctx)
		})
	}
	State.Listeners["grid"] = g.onUpdate

	// Every visit gets a freshly dealt board.
	if err := State.ConnectWS(); err != nil {
		g.Error = fmt.Sprintf("Không kết nối được: %v", err)
		klog.Errorf("Grid component: Error connecting: %v", err)
	}
}

func (g *Grid) OnDismount() {
	klog.Infof("Grid component: OnDismount called")
	if app.IsServer {
		return
	}
	delete(State.Listeners, "grid")
	State.Disconnect()
}

// armReveal schedules the popup once the server flipped the pending envelope.
func (g *Grid) armReveal(ctx app.Context) {
	e, ok := State.PendingReveal()
	if !ok || g.armedSlot == e.Slot {
		return
	}
	g.armedSlot = e.Slot
	time.AfterFunc(RevealDelay, func() {
		ctx.Dispatch(func(ctx app.Context) {
			g.armedSlot = -1
			g.showResult()
		})
	})
}

func (g *Grid) showResult() {
	e, ok := State.ShowResult()
	if !ok {
		return
	}
	klog.Infof("Grid component: showing slot %d: %s", e.Slot, lixi.FormatMoney(e.Amount))
	if lixi.IsBigWin(e.Amount) {
		fireConfetti(lixi.BigWinConfetti)
	}
}

func (g *Grid) onEnvelopeClick(slot int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		if !State.Open(slot) {
			klog.V(1).Infof("Grid component: click on slot %d ignored", slot)
		}
	}
}

func (g *Grid) onClosePopup(ctx app.Context, e app.Event) {
	State.ClosePopup()
}

func (g *Grid) onPopupClick(ctx app.Context, e app.Event) {
	// Clicks inside the popup must not reach the overlay.
	e.StopImmediatePropagation()
}

// envelopeClass returns the CSS classes of an envelope tile.
func envelopeClass(e lixi.Envelope) string {
	if e.Revealed {
		return "envelope flipped"
	}
	return "envelope"
}

// staggerStyle returns the entry animation delay of the envelope at index.
func staggerStyle(index int) string {
	return fmt.Sprintf("%dms", (time.Duration(index) * StaggerDelay).Milliseconds())
}

func (g *Grid) renderEnvelope(index int, e lixi.Envelope) app.UI {
	tile := app.Div().
		Class(envelopeClass(e)).
		Style("animation-delay", staggerStyle(index)).
		Body(
			app.Div().Class("envelope-front").Body(app.Span().Text("🧧")),
			app.Div().Class("envelope-back").Body(app.Span().Text("✓")),
		)
	if !e.Revealed {
		tile = tile.OnClick(g.onEnvelopeClick(e.Slot))
	}
	return tile
}

func (g *Grid) renderPopup() app.UI {
	e, ok := State.Selected()
	if !ok {
		return app.Text("")
	}
	tier := lixi.Classify(e.Amount)
	return app.Div().Class("lixi-overlay").OnClick(g.onClosePopup).Body(
		app.Div().Class("lixi-popup").OnClick(g.onPopupClick).Body(
			app.Button().Class("lixi-popup-close").Text("✕").OnClick(g.onClosePopup),
			app.Div().Class("lixi-popup-icon").Text("🧧"),
			app.Div().Class("lixi-popup-message").Text(tier.Message()),
			app.Div().Class("lixi-popup-amount "+tier.Color()).Text(lixi.FormatMoney(e.Amount)),
			app.Button().Class("lixi-popup-continue").Text("Tiếp tục").OnClick(g.onClosePopup),
		),
	)
}

func (g *Grid) Render() app.UI {
	if g.Error != "" {
		return app.Main().Class("lixi-page").Body(
			&Header{},
			app.Article().Body(
				app.H2().Text("Có lỗi xảy ra"),
				app.P().Style("color", "red").Text(g.Error),
				app.A().Href(ListingPath).Text("Quay lại"),
			),
		)
	}

	var content app.UI
	if State.Board == nil {
		content = app.Div().Aria("busy", "true").Text("Đang chia bao lì xì...")
	} else {
		tiles := make([]app.UI, 0, len(State.Board.Envelopes))
		for i, e := range State.Board.Envelopes {
			tiles = append(tiles, g.renderEnvelope(i, e))
		}
		content = app.Div().Class("lixi-grid").Body(tiles...)
	}

	return app.Main().Class("lixi-page").Body(
		&Header{},
		app.Div().Class("lixi-title").Body(
			app.H1().Text("🧧 Lật Lì Xì 🧧"),
			app.P().Text("Chạm vào bao để mở và nhận lộc"),
		),
		content,
		g.renderPopup(),
		app.Div().Class("lixi-decoration top-left").Text("🏮"),
		app.Div().Class("lixi-decoration top-right").Text("🎊"),
		app.Div().Class("lixi-decoration bottom-left").Text("🎆"),
		app.Div().Class("lixi-decoration bottom-right").Text("🏮"),
	)
}
