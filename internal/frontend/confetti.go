package frontend

import (
	"github.com/janpfeifer/LiXi/internal/lixi"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// fireConfetti triggers the canvas-confetti burst (fire and forget).
func fireConfetti(c lixi.Confetti) {
	if app.IsServer {
		return
	}
	if !app.Window().Get("confetti").Truthy() {
		klog.Warning("fireConfetti: canvas-confetti not loaded")
		return
	}
	app.Window().Call("confetti", c.Options())
}
