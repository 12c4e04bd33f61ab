package motor

import "testing"

func TestParseWinding(t *testing.T) {
	tests := []struct {
		in   string
		want Winding
		ok   bool
	}{
		{"wye", Wye, true},
		{"Y", Wye, true},
		{"star", Wye, true},
		{"delta", Delta, true},
		{" Delta ", Delta, true},
		{"triangle", Wye, false},
	}
	for _, tt := range tests {
		got, err := ParseWinding(tt.in)
		if tt.ok && err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%q: expected error", tt.in)
		}
		if tt.ok && got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("concentric"); err != nil || d != Motoring {
		t.Errorf("concentric should parse as motoring, got %v (%v)", d, err)
	}
	if d, err := ParseDirection("eccentric"); err != nil || d != Regenerating {
		t.Errorf("eccentric should parse as regenerating, got %v (%v)", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestSetParam(t *testing.T) {
	p := NewParams()
	if err := p.SetParam("bus_voltage", 72); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.BusVoltage != 72 {
		t.Errorf("expected 72, got %f", p.BusVoltage)
	}
	if err := p.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}
}

func TestGetParamsRoundTrip(t *testing.T) {
	p := NewParams()
	for name, val := range p.GetParams() {
		if err := p.SetParam(name, val); err != nil {
			t.Errorf("param %s not settable: %v", name, err)
		}
	}
}
