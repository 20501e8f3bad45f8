package simulation

import (
	"sort"

	"hydraulic-press-sim/internal/model"
)

// boundaryEpsilon absorbs float error when a sample time lands on a phase boundary.
const boundaryEpsilon = 1e-9

// PhaseSpan is one row of the phase table.
type PhaseSpan struct {
	Phase model.Phase
	Start float64 // s, inclusive
	End   float64 // s, exclusive except for the last span

	// Speed is the commanded speed in mm/s; negative while retracting.
	Speed float64
	// StrokeStart is the cumulative stroke at Start; StrokeDelta is the signed travel over the span.
	StrokeStart float64
	StrokeDelta float64
}

// PhaseState is the phase table evaluated at one instant.
type PhaseState struct {
	Index    int
	Phase    model.Phase
	Progress float64
	Speed    float64
	Stroke   float64
}

// PhaseTable maps elapsed cycle time to the active phase using cumulative boundaries.
// Spans are ordered and contiguous; a boundary instant belongs to the phase that starts there.
type PhaseTable struct {
	spans []PhaseSpan
	total float64
}

// NewPhaseTable builds the table for the four-phase cycle.
func NewPhaseTable(p model.CyclePhases) (*PhaseTable, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows := []struct {
		phase  model.Phase
		time   float64
		speed  float64
		stroke float64
	}{
		{model.PhaseFastDown, p.FastDown.Time, p.FastDown.Speed, p.FastDown.Stroke},
		{model.PhaseWorking, p.Working.Time, p.Working.Speed, p.Working.Stroke},
		{model.PhaseHolding, p.Holding.Time, 0, 0},
		{model.PhaseFastUp, p.FastUp.Time, -p.FastUp.Speed, -p.FastUp.Stroke},
	}

	t := &PhaseTable{spans: make([]PhaseSpan, 0, len(rows))}
	start, stroke := 0.0, 0.0
	for _, r := range rows {
		span := PhaseSpan{
			Phase:       r.phase,
			Start:       start,
			End:         start + r.time,
			Speed:       r.speed,
			StrokeStart: stroke,
			StrokeDelta: r.stroke,
		}
		t.spans = append(t.spans, span)
		start = span.End
		stroke += r.stroke
	}
	t.total = start
	return t, nil
}

// Total returns the cycle duration in seconds.
func (t *PhaseTable) Total() float64 { return t.total }

// Spans returns a copy of the table rows.
func (t *PhaseTable) Spans() []PhaseSpan {
	out := make([]PhaseSpan, len(t.spans))
	copy(out, t.spans)
	return out
}

// Locate returns the index of the active span at time tm and the progress through it.
// Times past the end of the cycle clamp to the last span at progress 1.
func (t *PhaseTable) Locate(tm float64) (int, float64) {
	last := len(t.spans) - 1
	i := sort.Search(len(t.spans), func(i int) bool {
		return t.spans[i].End > tm+boundaryEpsilon
	})
	if i > last {
		return last, 1
	}
	s := t.spans[i]
	return i, clamp((tm-s.Start)/(s.End-s.Start), 0, 1)
}

// At evaluates the table at time tm. Stroke is interpolated linearly inside the active
// span and never drops below zero.
func (t *PhaseTable) At(tm float64) PhaseState {
	i, progress := t.Locate(tm)
	s := t.spans[i]
	stroke := s.StrokeStart + progress*s.StrokeDelta
	if stroke < 0 {
		stroke = 0
	}
	return PhaseState{
		Index:    i,
		Phase:    s.Phase,
		Progress: progress,
		Speed:    s.Speed,
		Stroke:   stroke,
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
