package frontend

import "github.com/maxence-charriere/go-app/v10/pkg/app"

const (
	ListingPath = "/lixi"      // Parent screen listing the lì xì games
	GridPath    = "/lixi/grid" // The envelope grid
)

// RegisterRoutes registers the front-end components, both in the browser
// and on the server (for prerendering).
func RegisterRoutes() {
	app.Route("/", func() app.Composer { return &Listing{} })
	app.Route(ListingPath, func() app.Composer { return &Listing{} })
	app.Route(GridPath, func() app.Composer { return &Grid{} })
}
