// Package camera tracks the horizontal scroll offset of the viewport.
package camera

import "github.com/vovakirdan/tui-platformer/internal/core"

// Camera eases toward a target that keeps the player in the left third
// of the viewport.
type Camera struct {
	X         float64
	Width     float64 // viewport width in world pixels
	Smoothing float64 // fraction of the remaining distance covered per update
}

// New creates a camera at the world origin.
func New(viewportWidth, smoothing float64) *Camera {
	return &Camera{Width: viewportWidth, Smoothing: smoothing}
}

// Target returns the clamped offset the camera is heading for.
func (c *Camera) Target(playerX, worldWidth float64) float64 {
	return core.ClampF(playerX-c.Width/3, 0, maxOffset(worldWidth, c.Width))
}

// Update moves the camera one smoothing step toward its target.
func (c *Camera) Update(playerX, worldWidth float64) {
	target := c.Target(playerX, worldWidth)
	c.X += (target - c.X) * c.Smoothing
	c.X = core.ClampF(c.X, 0, maxOffset(worldWidth, c.Width))
}

// Snap jumps straight to the target.
func (c *Camera) Snap(playerX, worldWidth float64) {
	c.X = c.Target(playerX, worldWidth)
}

func maxOffset(worldWidth, viewWidth float64) float64 {
	if worldWidth <= viewWidth {
		return 0
	}
	return worldWidth - viewWidth
}
