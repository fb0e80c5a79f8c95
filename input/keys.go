// Package input provides key-state sources for the pad driver.
//
// Key state is always passed in explicitly; nothing here is global.
package input

import "fmt"

// Key is a keyboard key code. Values follow raylib (GLFW) numbering, where
// letters and digits use their ASCII uppercase code.
type Key int32

const (
	KeySpace Key = 32
	KeyEqual Key = 61
	KeyMinus Key = 45
	KeyA     Key = 65
	KeyD     Key = 68
	KeyP     Key = 80
	KeyR     Key = 82
	KeyS     Key = 83
	KeyW     Key = 87
	KeyRight Key = 262
	KeyLeft  Key = 263
	KeyDown  Key = 264
	KeyUp    Key = 265
)

var keyNames = map[Key]string{
	KeySpace: "Space",
	KeyEqual: "=",
	KeyMinus: "-",
	KeyRight: "Right",
	KeyLeft:  "Left",
	KeyDown:  "Down",
	KeyUp:    "Up",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if (k >= '0' && k <= '9') || (k >= 'A' && k <= 'Z') {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// KeyState answers whether a key is currently held.
type KeyState interface {
	IsKeyDown(k Key) bool
}

// Keys is a map-backed KeyState for headless runs and tests.
// The zero value has no keys held.
type Keys struct {
	down map[Key]bool
}

// NewKeys returns a state with the given keys held.
func NewKeys(held ...Key) *Keys {
	k := &Keys{}
	for _, key := range held {
		k.Press(key)
	}
	return k
}

func (k *Keys) Press(key Key) {
	if k.down == nil {
		k.down = make(map[Key]bool)
	}
	k.down[key] = true
}

func (k *Keys) Release(key Key) {
	delete(k.down, key)
}

func (k *Keys) IsKeyDown(key Key) bool {
	if k == nil {
		return false
	}
	return k.down[key]
}

// None is a KeyState with nothing held.
var None KeyState = (*Keys)(nil)
