package lixi

// Origin is a point on the screen, as fractions of its width and height.
type Origin struct {
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y"`
}

// Confetti configures a particle burst. Field names follow the options of
// the canvas-confetti library, so it can be passed straight to it.
type Confetti struct {
	ParticleCount int      `json:"particleCount"`
	Spread        int      `json:"spread"`
	Origin        Origin   `json:"origin"`
	Colors        []string `json:"colors"`
}

// BigWinConfetti is fired when a big win is displayed.
var BigWinConfetti = Confetti{
	ParticleCount: 80,
	Spread:        70,
	Origin:        Origin{Y: 0.5},
	Colors:        []string{"#FFD700", "#FF6B6B", "#FF8C00"},
}

// Options converts the configuration to the plain map expected by JS bindings.
func (c Confetti) Options() map[string]any {
	colors := make([]any, len(c.Colors))
	for i, color := range c.Colors {
		colors[i] = color
	}
	origin := map[string]any{"y": c.Origin.Y}
	if c.Origin.X != 0 {
		origin["x"] = c.Origin.X
	}
	return map[string]any{
		"particleCount": c.ParticleCount,
		"spread":        c.Spread,
		"origin":        origin,
		"colors":        colors,
	}
}
