package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Header is the top bar of the grid, with the way back to the listing.
type Header struct {
	app.Compo
}

func (h *Header) onBack(ctx app.Context, e app.Event) {
	e.PreventDefault()
	ctx.Navigate(ListingPath)
}

func (h *Header) Render() app.UI {
	return app.Header().Class("lixi-header").Body(
		app.A().
			Href(ListingPath).
			Class("lixi-back").
			OnClick(h.onBack).
			Body(
				app.Span().Class("lixi-back-arrow").Text("←"),
				app.Text(" Quay lại"),
			),
	)
}
