package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/input"
)

var _ input.KeyState = Keyboard{}

// Keyboard polls raylib for key state. It needs an open window.
type Keyboard struct{}

func (Keyboard) IsKeyDown(k input.Key) bool {
	return rl.IsKeyDown(int32(k))
}
