package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/seralva/forcecurve/internal/motor"
	"github.com/seralva/forcecurve/internal/solver"
)

const (
	MinSteps = 10
	MaxSteps = 500

	// NewtonsPerLbf converts output force to pound-force.
	NewtonsPerLbf = 4.4482216152605

	// axisQuantum is the y-axis headroom rounding for chart consumers.
	axisQuantum = 25.0
)

// DefaultLimits is the preset supply wattage set offered to users.
var DefaultLimits = []int{450, 1000, 1500, 2000, 3000, 5000}

// Sweep describes the linear speed domain of one computation.
type Sweep struct {
	MaxSpeed float64 // m/s
	Steps    int     // intervals; samples are Steps+1
}

func NewSweep() Sweep {
	return Sweep{MaxSpeed: 3.0, Steps: 120}
}

// Row is one sample: the cable speed plus the force in lbf under each
// active supply limit, keyed by its display label.
type Row struct {
	Speed  float64
	Forces map[string]float64
}

// Series is one limit's curve in sample order, a column view of the table.
type Series struct {
	Watts  int
	Label  string
	Values []float64
}

// Table is the full recomputed output. It is replaced wholesale on any
// parameter change and carries no state between computations.
type Table struct {
	Rows   []Row
	Watts  []int    // active limits, ascending
	Labels []string // Label(w) for each entry of Watts
	Speeds []float64
	MaxY   float64 // max force rounded up to a multiple of 25
}

// Label formats a supply wattage for table columns and chart legends.
func Label(watts int) string {
	return fmt.Sprintf("%d W", watts)
}

// NormalizeLimits drops non-positive entries, deduplicates, and sorts
// ascending. An empty result falls back to the preset set.
func NormalizeLimits(watts []int) []int {
	seen := make(map[int]bool, len(watts))
	out := make([]int, 0, len(watts))
	for _, w := range watts {
		if w <= 0 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	if len(out) == 0 {
		out = append(out, DefaultLimits...)
	}
	sort.Ints(out)
	return out
}

// Generator drives the speed sweep across the solver for each active
// supply limit.
type Generator struct {
	Motor        motor.Params
	Limits       motor.Limits
	Transmission motor.Transmission
	Sweep        Sweep
	Watts        []int
}

func NewGenerator() Generator {
	return Generator{
		Motor:        motor.NewParams(),
		Limits:       motor.NewLimits(),
		Transmission: motor.NewTransmission(),
		Sweep:        NewSweep(),
		Watts:        append([]int(nil), DefaultLimits...),
	}
}

// Generate computes the whole table. It is a pure function of the
// generator's fields; callers decide when to re-invoke it.
func (g Generator) Generate() *Table {
	steps := g.Sweep.Steps
	if steps < MinSteps {
		steps = MinSteps
	}
	if steps > MaxSteps {
		steps = MaxSteps
	}
	maxSpeed := math.Max(0, motor.Sanitize(g.Sweep.MaxSpeed))

	watts := NormalizeLimits(g.Watts)
	labels := make([]string, len(watts))
	for i, w := range watts {
		labels[i] = Label(w)
	}

	el := g.Motor.Derive()
	s := solver.New(el, g.Limits)

	radius := motor.ClampDenom(g.Transmission.DrumRadius)
	ratio := motor.ClampDenom(g.Transmission.Ratio)
	eta := motor.Sanitize(g.Transmission.Efficiency)
	// cable force per unit motor torque, through gearbox and drum
	forcePerTorque := ratio * eta / radius

	t := &Table{
		Rows:   make([]Row, 0, steps+1),
		Watts:  watts,
		Labels: labels,
		Speeds: make([]float64, 0, steps+1),
	}

	maxForce := 0.0
	for i := 0; i <= steps; i++ {
		v := maxSpeed * float64(i) / float64(steps)
		omegaM := v / radius * ratio

		row := Row{Speed: v, Forces: make(map[string]float64, len(labels))}

		if g.Limits.Direction == motor.Regenerating {
			// Supply wattage does not bind with a regen clamp: one
			// solve covers every limit.
			f := toLbf(s.MaxTorque(omegaM, 0) * forcePerTorque)
			for _, lbl := range labels {
				row.Forces[lbl] = f
			}
			if f > maxForce {
				maxForce = f
			}
		} else {
			for j, w := range watts {
				f := toLbf(s.MaxTorque(omegaM, float64(w)) * forcePerTorque)
				row.Forces[labels[j]] = f
				if f > maxForce {
					maxForce = f
				}
			}
		}

		t.Rows = append(t.Rows, row)
		t.Speeds = append(t.Speeds, v)
	}

	t.MaxY = math.Ceil(maxForce/axisQuantum) * axisQuantum
	return t
}

// toLbf converts newtons to pound-force, flooring negative or
// non-finite values to zero.
func toLbf(newtons float64) float64 {
	f := newtons / NewtonsPerLbf
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Series extracts per-limit columns in label order.
func (t *Table) Series() []Series {
	out := make([]Series, 0, len(t.Labels))
	for j, lbl := range t.Labels {
		s := Series{Watts: t.Watts[j], Label: lbl, Values: make([]float64, len(t.Rows))}
		for i, row := range t.Rows {
			s.Values[i] = row.Forces[lbl]
		}
		out = append(out, s)
	}
	return out
}

// Peak returns the highest force in the table and the speed at which it
// occurs.
func (t *Table) Peak() (force, speed float64) {
	for _, row := range t.Rows {
		for _, f := range row.Forces {
			if f > force {
				force = f
				speed = row.Speed
			}
		}
	}
	return force, speed
}
