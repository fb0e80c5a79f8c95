package telemetry

import (
	"log/slog"
	"sort"

	"github.com/pthm-cable/drawpad/shapes"
	"github.com/pthm-cable/drawpad/systems"
)

// FrameStats is one row of frames.csv.
type FrameStats struct {
	Tick       int32   `csv:"tick"`
	SimTimeSec float64 `csv:"sim_time"`
	Paused     bool    `csv:"paused"`

	// Counts at the sampled tick
	Shapes     int `csv:"shapes"`
	Moving     int `csv:"moving"`
	Falling    int `csv:"falling"`
	Circles    int `csv:"circles"`
	Rectangles int `csv:"rectangles"`
	Triangles  int `csv:"triangles"`

	// Area distribution
	TotalArea float64 `csv:"total_area"`
	AreaMean  float64 `csv:"area_mean"`
	AreaP10   float64 `csv:"area_p10"`
	AreaP50   float64 `csv:"area_p50"`
	AreaP90   float64 `csv:"area_p90"`
}

// NewFrameStats builds a row from the scene summary at tick.
func NewFrameStats(tick int32, dt float64, scene systems.SceneStats, paused bool) FrameStats {
	mean, p10, p50, p90 := ComputeAreaStats(scene.Areas)
	return FrameStats{
		Tick:       tick,
		SimTimeSec: float64(tick) * dt,
		Paused:     paused,
		Shapes:     scene.Shapes,
		Moving:     scene.Moving,
		Falling:    scene.Falling,
		Circles:    scene.ByKind[shapes.KindCircle],
		Rectangles: scene.ByKind[shapes.KindRectangle],
		Triangles:  scene.ByKind[shapes.KindTriangle],
		TotalArea:  scene.TotalArea,
		AreaMean:   mean,
		AreaP10:    p10,
		AreaP50:    p50,
		AreaP90:    p90,
	}
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeAreaStats calculates mean and percentiles from area values.
func ComputeAreaStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	// Sort a copy, the caller's slice is left alone
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", int(s.Tick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Bool("paused", s.Paused),
		slog.Int("shapes", s.Shapes),
		slog.Int("moving", s.Moving),
		slog.Int("falling", s.Falling),
		slog.Float64("total_area", s.TotalArea),
		slog.Float64("area_p50", s.AreaP50),
	)
}

// LogStats logs the frame stats using slog.
func (s FrameStats) LogStats() {
	slog.Info("frame stats",
		"tick", s.Tick,
		"sim_time", s.SimTimeSec,
		"paused", s.Paused,
		"shapes", s.Shapes,
		"moving", s.Moving,
		"falling", s.Falling,
		"circles", s.Circles,
		"rectangles", s.Rectangles,
		"triangles", s.Triangles,
		"total_area", s.TotalArea,
		"area_mean", s.AreaMean,
		"area_p10", s.AreaP10,
		"area_p50", s.AreaP50,
		"area_p90", s.AreaP90,
	)
}
