package motor

import (
	"fmt"
	"math"
	"strings"
)

const (
	// KvConversion relates the torque constant to the speed constant:
	// Kt [N·m/A] = KvConversion / Kv [rpm/V].
	KvConversion = 9.5492965964254

	// TempCoefficient is the copper resistivity slope per °C about the
	// 25 °C reference winding temperature.
	TempCoefficient = 0.0039
	TempReference   = 25.0

	// Eps bounds user-supplied denominators away from zero.
	Eps = 1e-9
)

// Winding is the stator phase topology.
type Winding int

const (
	Wye Winding = iota
	Delta
)

func (w Winding) String() string {
	if w == Delta {
		return "delta"
	}
	return "wye"
}

func ParseWinding(s string) (Winding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wye", "star", "y":
		return Wye, nil
	case "delta", "d":
		return Delta, nil
	}
	return Wye, fmt.Errorf("unknown winding topology: %q", s)
}

// Direction selects motoring (driving the load) or regenerating
// (braking against it) operation.
type Direction int

const (
	Motoring Direction = iota
	Regenerating
)

func (d Direction) String() string {
	if d == Regenerating {
		return "regenerating"
	}
	return "motoring"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "motoring", "motor", "concentric":
		return Motoring, nil
	case "regenerating", "regen", "eccentric":
		return Regenerating, nil
	}
	return Motoring, fmt.Errorf("unknown direction: %q", s)
}

// Params holds the raw electrical inputs for one motor. Exactly one of
// Kt and Kv is authoritative: if Kv > 0 it wins and Kt is derived from it.
// Resistance and inductance are line-to-line as found on datasheets.
type Params struct {
	Kt          float64 // N·m/A
	Kv          float64 // rpm/V, authoritative when > 0
	Rll         float64 // Ω line-to-line
	Lll         float64 // H line-to-line
	Winding     Winding
	CopperTemp  float64 // °C
	BusVoltage  float64 // V
	Utilization float64 // modulation headroom, 0..1
}

// Limits caps the phase current plane.
type Limits struct {
	IMax      float64 // A, phase current cap
	IdFWMax   float64 // A, magnitude of the deepest field-weakening current
	Direction Direction
}

// Transmission maps motor shaft torque and speed to cable force and speed.
type Transmission struct {
	Ratio      float64 // motor revolutions per drum revolution
	Efficiency float64 // 0..1
	DrumRadius float64 // m
}

// TorqueConstant resolves the authoritative torque constant.
func (p Params) TorqueConstant() float64 {
	if kv := Sanitize(p.Kv); kv > 0 {
		return KvConversion / kv
	}
	return Sanitize(p.Kt)
}

// Sanitize coerces NaN and Inf to zero. Form-style inputs arrive
// unchecked and a non-finite value must never reach the solver.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampDenom bounds a divisor away from zero, preserving sign for
// negative values.
func ClampDenom(v float64) float64 {
	v = Sanitize(v)
	if v >= 0 && v < Eps {
		return Eps
	}
	if v < 0 && v > -Eps {
		return -Eps
	}
	return v
}

func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"kt":          p.Kt,
		"kv":          p.Kv,
		"rll":         p.Rll,
		"lll":         p.Lll,
		"copper_temp": p.CopperTemp,
		"bus_voltage": p.BusVoltage,
		"utilization": p.Utilization,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "kt":
		p.Kt = value
	case "kv":
		p.Kv = value
	case "rll":
		p.Rll = value
	case "lll":
		p.Lll = value
	case "copper_temp":
		p.CopperTemp = value
	case "bus_voltage":
		p.BusVoltage = value
	case "utilization":
		p.Utilization = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// NewParams returns a 48 V cable-machine outrunner as a starting point.
func NewParams() Params {
	return Params{
		Kt:          0.272,
		Rll:         0.164,
		Lll:         235e-6,
		Winding:     Delta,
		CopperTemp:  25.0,
		BusVoltage:  48.0,
		Utilization: 0.95,
	}
}

func NewLimits() Limits {
	return Limits{IMax: 72.0, IdFWMax: 0.0, Direction: Motoring}
}

func NewTransmission() Transmission {
	return Transmission{Ratio: 10.0, Efficiency: 0.9, DrumRadius: 0.05}
}
