package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drawpad/components"
	"github.com/pthm-cable/drawpad/shapes"
)

// SceneStats summarizes the pad contents.
type SceneStats struct {
	Shapes    int
	Moving    int
	Falling   int
	TotalArea float64
	ByKind    map[shapes.Kind]int
	Areas     []float64 // per shape, insertion order not preserved
}

// StatsSystem counts shapes and sums their areas.
type StatsSystem struct {
	all     ecs.Filter1[components.Drawable]
	moving  ecs.Filter1[components.Motion]
	falling ecs.Filter1[components.Falling]
}

// NewStatsSystem creates a new stats system.
func NewStatsSystem(w *ecs.World) *StatsSystem {
	return &StatsSystem{
		all:     *ecs.NewFilter1[components.Drawable](w),
		moving:  *ecs.NewFilter1[components.Motion](w),
		falling: *ecs.NewFilter1[components.Falling](w),
	}
}

// Compute walks the world and returns current stats.
func (s *StatsSystem) Compute() SceneStats {
	stats := SceneStats{ByKind: make(map[shapes.Kind]int)}

	query := s.all.Query()
	for query.Next() {
		d := query.Get()
		stats.Shapes++
		area := d.Shape.Area()
		stats.TotalArea += area
		stats.Areas = append(stats.Areas, area)
		stats.ByKind[d.Shape.Kind()]++
	}

	mq := s.moving.Query()
	for mq.Next() {
		stats.Moving++
	}

	fq := s.falling.Query()
	for fq.Next() {
		stats.Falling++
	}
	return stats
}
