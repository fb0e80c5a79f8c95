package systems

// System IDs, shared with the perf collector's phase names.
const (
	IDHooks   = "hooks"
	IDMotion  = "motion"
	IDGravity = "gravity"
	IDDraw    = "draw"
	IDStats   = "stats"
)

// SystemInfo describes a pad system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "update", "render")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the HUD and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems in the order a tick runs them.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: IDHooks, Name: "Hooks", Description: "Runs update callbacks", Category: "update"})
	r.Register(SystemInfo{ID: IDMotion, Name: "Motion", Description: "Applies velocity, spin and growth", Category: "update"})
	r.Register(SystemInfo{ID: IDGravity, Name: "Gravity", Description: "Integrates falling bodies", Category: "update"})
	r.Register(SystemInfo{ID: IDDraw, Name: "Draw", Description: "Draws shapes in insertion order", Category: "render"})
	r.Register(SystemInfo{ID: IDStats, Name: "Stats", Description: "Counts shapes and area", Category: "render"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
