package input

// HoldCounter counts the ticks a key has been held, summed over every press.
type HoldCounter struct {
	Key   Key
	count int
	held  bool
}

// Update samples the key once per tick. It reports true on the tick the key
// is released.
func (h *HoldCounter) Update(keys KeyState) (released bool) {
	down := keys.IsKeyDown(h.Key)
	if down {
		h.count++
	}
	released = h.held && !down
	h.held = down
	return released
}

// Count returns the total number of ticks the key was seen held.
func (h *HoldCounter) Count() int {
	return h.count
}

// Held reports whether the key was down at the last Update.
func (h *HoldCounter) Held() bool {
	return h.held
}
