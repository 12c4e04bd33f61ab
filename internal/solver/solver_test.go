package solver

import (
	"math"
	"testing"

	"github.com/seralva/forcecurve/internal/motor"
)

// scenarioModel is the reference 48 V cable machine motor: delta wound,
// Rll 0.164 Ω, Lll 235 µH, 95% utilization.
func scenarioModel() motor.Derived {
	return motor.Params{
		Kt:          0.272,
		Rll:         0.164,
		Lll:         235e-6,
		Winding:     motor.Delta,
		CopperTemp:  25,
		BusVoltage:  48,
		Utilization: 0.95,
	}.Derive()
}

func TestTorqueCapAtStall(t *testing.T) {
	s := New(scenarioModel(), motor.Limits{IMax: 72, Direction: motor.Motoring})

	// At zero speed with an ample supply, only the current circle binds.
	got := s.MaxTorque(0, 1e9)
	want := 0.272 * 72

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected stall torque %f, got %f", want, got)
	}
}

func TestStallTorqueUnderSupplyCap(t *testing.T) {
	el := scenarioModel()
	s := New(el, motor.Limits{IMax: 72, Direction: motor.Motoring})

	// At stall the power cap allows iq = sqrt(P / 3R).
	got := s.MaxTorque(0, 450)
	want := el.Kt * math.Sqrt(450/(3*el.RPhase))

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f under 450 W cap, got %f", want, got)
	}
}

func TestTorqueNeverExceedsCap(t *testing.T) {
	el := scenarioModel()
	s := New(el, motor.Limits{IMax: 72, IdFWMax: 30, Direction: motor.Motoring})
	cap := el.Kt * 72

	for _, omega := range []float64{0, 10, 100, 500, 2000} {
		for _, p := range []float64{450, 1500, 5000, 1e9} {
			got := s.MaxTorque(omega, p)
			if got > cap+1e-12 {
				t.Errorf("omega=%f p=%f: torque %f exceeds cap %f", omega, p, got, cap)
			}
			if got < 0 || math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("omega=%f p=%f: torque %f not finite non-negative", omega, p, got)
			}
		}
	}
}

func TestZeroFieldWeakeningCollapse(t *testing.T) {
	el := scenarioModel()
	lim := motor.Limits{IMax: 72, Direction: motor.Motoring}
	s := New(el, lim)

	for _, omega := range []float64{0, 50, 250, 800} {
		for _, p := range []float64{450, 2000} {
			got := s.MaxTorque(omega, p)

			// Direct single-point evaluation at i_d = 0.
			iq := lim.IMax
			a := el.RPhase*el.RPhase + (omega*el.LPhase)*(omega*el.LPhase)
			if a < motor.Eps {
				a = motor.Eps
			}
			b := 2 * el.RPhase * omega * el.Kt
			c := (omega*el.Kt)*(omega*el.Kt) - el.VMax*el.VMax
			if disc := b*b - 4*a*c; disc >= 0 {
				iq = math.Min(iq, math.Max(0, (-b+math.Sqrt(disc))/(2*a)))
			}
			pb := el.Kt * omega
			pa := 3 * el.RPhase
			if disc := pb*pb + 4*pa*p; disc >= 0 {
				iq = math.Min(iq, math.Max(0, (-pb+math.Sqrt(disc))/(2*pa)))
			} else {
				iq = 0
			}
			want := math.Min(el.Kt*iq, el.Kt*lim.IMax)

			if math.Abs(got-want) > 1e-9 {
				t.Errorf("omega=%f p=%f: expected %f, got %f", omega, p, want, got)
			}
		}
	}
}

func TestDegenerateInputs(t *testing.T) {
	el := scenarioModel()

	s := New(el, motor.Limits{IMax: 0, Direction: motor.Motoring})
	if got := s.MaxTorque(100, 1000); got != 0 {
		t.Errorf("expected zero torque with Imax=0, got %f", got)
	}

	zeroKt := el
	zeroKt.Kt = 0
	s = New(zeroKt, motor.Limits{IMax: 72, Direction: motor.Motoring})
	if got := s.MaxTorque(100, 1000); got != 0 {
		t.Errorf("expected zero torque with Kt=0, got %f", got)
	}

	s = New(el, motor.Limits{IMax: 72, Direction: motor.Motoring})
	if got := s.MaxTorque(math.NaN(), 1000); math.IsNaN(got) || got < 0 {
		t.Errorf("NaN speed must not propagate, got %f", got)
	}
}

func TestZeroResistance(t *testing.T) {
	el := motor.Derived{Kt: 0.1, RPhase: 0, LPhase: 1e-4, VMax: 1e6}
	s := New(el, motor.Limits{IMax: 1e6, Direction: motor.Motoring})

	// With R = 0 the power bound degenerates to iq = P/(Kt·ω).
	got := s.MaxTorque(100, 500)
	want := 0.1 * (500.0 / (0.1 * 100))

	if math.Abs(got-want)/want > 1e-3 {
		t.Errorf("expected %f at R=0, got %f", want, got)
	}
}

func TestRegenSupplyIndependence(t *testing.T) {
	el := scenarioModel()
	s := New(el, motor.Limits{IMax: 72, IdFWMax: 20, Direction: motor.Regenerating})

	for _, omega := range []float64{0, 100, 400, 1500} {
		base := s.MaxTorque(omega, 450)
		for _, p := range []float64{1000, 5000, 0, -1} {
			if got := s.MaxTorque(omega, p); got != base {
				t.Errorf("omega=%f: regen torque depends on supply cap (%f vs %f)", omega, base, got)
			}
		}
	}
}

func TestFieldWeakeningExtendsEnvelope(t *testing.T) {
	// Parameters chosen so the voltage quadratic has a real,
	// torque-suppressing root at i_d = 0 above base speed.
	el := motor.Derived{Kt: 0.1, RPhase: 0.3, LPhase: 1e-4, VMax: 5}

	without := New(el, motor.Limits{IMax: 50, Direction: motor.Motoring})
	with := New(el, motor.Limits{IMax: 50, IdFWMax: 40, Direction: motor.Motoring})

	omega := 100.0
	p := 1e5
	if got := without.MaxTorque(omega, p); got != 0 {
		t.Fatalf("expected voltage-collapsed torque without field weakening, got %f", got)
	}
	if got := with.MaxTorque(omega, p); got <= 0 {
		t.Errorf("expected positive torque with field weakening, got %f", got)
	}
}

func TestPowerOnlyTorque(t *testing.T) {
	// kcu·τ² + ω·τ = P must hold at the returned root.
	kcu := 9.97
	for _, omega := range []float64{0, 40, 300} {
		for _, p := range []float64{450, 3000} {
			tau := PowerOnlyTorque(kcu, omega, p)
			back := kcu*tau*tau + omega*tau
			if math.Abs(back-p)/p > 1e-9 {
				t.Errorf("omega=%f p=%f: root %f gives power %f", omega, p, tau, back)
			}
		}
	}

	if got := PowerOnlyTorque(kcu, 100, 0); got != 0 {
		t.Errorf("expected zero torque at zero power, got %f", got)
	}
	if got := PowerOnlyTorque(kcu, 100, -500); got != 0 {
		t.Errorf("expected zero torque at negative power, got %f", got)
	}
}
