package frontend

import (
	"fmt"

	"github.com/janpfeifer/LiXi/internal/lixi"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Listing is the landing page, leading to the envelope grid.
type Listing struct {
	app.Compo
}

func (l *Listing) OnNav(ctx app.Context) {
	klog.V(1).Infof("Listing: OnNav called")
}

func (l *Listing) OnAppUpdate(ctx app.Context) {
	klog.Infof("Listing component: App update available, reloading...")
	ctx.Reload()
}

func (l *Listing) onPlay(ctx app.Context, e app.Event) {
	e.PreventDefault()
	ctx.Navigate(GridPath)
}

func (l *Listing) Render() app.UI {
	var prizes []app.UI
	for _, pc := range lixi.Distribution() {
		tier := lixi.Classify(pc.Amount)
		prizes = append(prizes, app.Li().Body(
			app.Span().Class(tier.Color()).Text(lixi.FormatMoney(pc.Amount)),
			app.Text(fmt.Sprintf(" × %d", pc.Count)),
		))
	}

	return app.Main().Class("lixi-page").Body(
		app.Article().Class("lixi-listing").Body(
			app.Header().Body(
				app.H1().Text("🧧 Lì Xì Tết 🧧"),
			),
			app.P().Text(fmt.Sprintf("%d bao lì xì đang chờ bạn. Mỗi lần chỉ được mở một bao!", lixi.NumEnvelopes)),
			app.Ul().Class("lixi-prizes").Body(prizes...),
			app.Footer().Body(
				app.A().
					Href(GridPath).
					Class("lixi-play").
					OnClick(l.onPlay).
					Text("Lật Lì Xì"),
			),
		),
	)
}
