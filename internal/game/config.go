package game

import "fireworks/internal/sim"

// Window defaults, used when the configuration leaves them unset.
const (
	WindowWidth  = sim.WorldWidth
	WindowHeight = sim.WorldHeight
	WindowTitle  = "Fireworks"
)

// hiddenWait bounds how long the loop blocks for events while the window
// has no framebuffer (minimised).
const hiddenWait = 0.1
// MaxSpriteBatch is the number of circles uploaded per draw call.
const MaxSpriteBatch = 8192
