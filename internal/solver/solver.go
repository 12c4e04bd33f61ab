package solver

import (
	"math"

	"github.com/seralva/forcecurve/internal/motor"
)

// DefaultGridPoints is the number of field-weakening samples across
// [-IdFWMax, 0], both endpoints included.
const DefaultGridPoints = 41

// Solver evaluates the maximum achievable torque magnitude for one
// electrical model and one set of current limits. It is stateless apart
// from its configuration and safe for concurrent use.
type Solver struct {
	El         motor.Derived
	Lim        motor.Limits
	GridPoints int
}

func New(el motor.Derived, lim motor.Limits) *Solver {
	return &Solver{El: el, Lim: lim, GridPoints: DefaultGridPoints}
}

// NewPowerOnly builds a solver with voltage unconstrained and no field
// weakening, the reduced entry path where only the supply cap and the
// current circle bind.
func NewPowerOnly(el motor.Derived, imax float64) *Solver {
	el.VMax = math.Inf(1)
	return New(el, motor.Limits{IMax: imax, Direction: motor.Motoring})
}

// MaxTorque returns the largest torque magnitude in N·m sustainable at
// motor angular speed omegaM (rad/s) under supply cap powerLimit (W).
// The power cap only binds in motoring mode. The result is always
// finite and non-negative.
func (s *Solver) MaxTorque(omegaM, powerLimit float64) float64 {
	kt := motor.Sanitize(s.El.Kt)
	imax := motor.Sanitize(s.Lim.IMax)
	if kt <= 0 || imax <= 0 {
		return 0
	}

	omegaM = motor.Sanitize(omegaM)
	idSpan := math.Max(0, motor.Sanitize(s.Lim.IdFWMax))

	n := s.GridPoints
	if n < 2 || idSpan == 0 {
		n = 1
	}

	best := 0.0
	for i := 0; i < n; i++ {
		id := 0.0
		if n > 1 {
			id = -idSpan * float64(i) / float64(n-1)
		}
		iq := s.maxIq(id, omegaM, powerLimit)
		if tau := kt * iq; tau > best {
			best = tau
		}
	}

	if cap := kt * imax; best > cap {
		best = cap
	}
	if best < 0 || math.IsNaN(best) || math.IsInf(best, 0) {
		return 0
	}
	return best
}

// maxIq intersects the three per-i_d bounds on the torque current.
func (s *Solver) maxIq(id, omegaM, powerLimit float64) float64 {
	iq := math.Sqrt(math.Max(0, s.Lim.IMax*s.Lim.IMax-id*id))
	iq = math.Min(iq, s.voltageBound(id, omegaM))
	if s.Lim.Direction == motor.Motoring {
		iq = math.Min(iq, s.powerBound(id, omegaM, powerLimit))
	}
	return iq
}

// voltageBound solves A·i_q² ∓ B·i_q + C(i_d) ≤ 0 from the steady-state
// dq voltage equations. A negative discriminant leaves the constraint
// non-binding.
func (s *Solver) voltageBound(id, omegaM float64) float64 {
	r := s.El.RPhase
	wl := omegaM * s.El.LPhase
	ke := s.El.Kt

	a := r*r + wl*wl
	if a < motor.Eps {
		a = motor.Eps
	}
	b := 2 * r * omegaM * ke
	vq0 := omegaM * (s.El.LPhase*id + ke)
	c := (r*id)*(r*id) + vq0*vq0 - s.El.VMax*s.El.VMax

	disc := b*b - 4*a*c
	if disc < 0 {
		return math.Inf(1)
	}
	root := math.Sqrt(disc)
	if s.Lim.Direction == motor.Regenerating {
		return math.Max(0, (b+root)/(2*a))
	}
	return math.Max(0, (-b+root)/(2*a))
}

// powerBound solves 3R·i_q² + Kt·ω·i_q + (3R·i_d² − P) ≤ 0. A negative
// discriminant means motoring is infeasible at this point, not
// unconstrained.
func (s *Solver) powerBound(id, omegaM, powerLimit float64) float64 {
	p := motor.Sanitize(powerLimit)
	a := 3 * s.El.RPhase
	if a < motor.Eps {
		a = motor.Eps
	}
	b := s.El.Kt * omegaM
	c := 3*s.El.RPhase*id*id - p

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0
	}
	return math.Max(0, (-b+math.Sqrt(disc))/(2*a))
}

// PowerOnlyTorque solves the copper-loss quadratic kcu·τ² + ω·τ − P = 0
// for its positive root: the torque at which copper loss plus shaft
// power exactly meets the supply cap, ignoring voltage and current
// limits.
func PowerOnlyTorque(kcu, omegaM, powerLimit float64) float64 {
	p := motor.Sanitize(powerLimit)
	if p <= 0 {
		return 0
	}
	a := motor.Sanitize(kcu)
	if a < motor.Eps {
		a = motor.Eps
	}
	w := motor.Sanitize(omegaM)
	disc := w*w + 4*a*p
	if disc < 0 {
		return 0
	}
	return math.Max(0, (-w+math.Sqrt(disc))/(2*a))
}
