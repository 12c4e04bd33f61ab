package motor

import "math"

// Derived holds the per-phase electrical model computed from raw
// line-to-line inputs. It is rebuilt for every evaluation and never
// stored across parameter changes.
type Derived struct {
	Kt     float64 // N·m/A, equals the back-EMF constant Ke in SI units
	RPhase float64 // Ω per phase, temperature corrected
	LPhase float64 // H per phase
	VMax   float64 // V, phase voltage limit
}

// phaseTransform converts a line-to-line quantity to per-phase for the
// configured winding topology.
func (p Params) phaseTransform(ll float64) float64 {
	if p.Winding == Wye {
		return ll / 2
	}
	return 1.5 * ll
}

// Derive computes the per-phase model. All inputs are sanitized here so
// downstream code can assume finite values.
func (p Params) Derive() Derived {
	rBase := p.phaseTransform(Sanitize(p.Rll))
	temp := Sanitize(p.CopperTemp)
	return Derived{
		Kt:     p.TorqueConstant(),
		RPhase: rBase * (1 + TempCoefficient*(temp-TempReference)),
		LPhase: p.phaseTransform(Sanitize(p.Lll)),
		VMax:   Sanitize(p.Utilization) * Sanitize(p.BusVoltage) / math.Sqrt(3),
	}
}

// CopperLossCoeff is kcu in the power-only model, where copper loss is
// P_cu = kcu·τ².
func (d Derived) CopperLossCoeff() float64 {
	kt := ClampDenom(d.Kt)
	return 3 * d.RPhase / (kt * kt)
}
