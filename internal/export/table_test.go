package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/seralva/forcecurve/internal/curve"
)

func sampleTable(t *testing.T) *curve.Table {
	t.Helper()
	g := curve.NewGenerator()
	g.Watts = []int{450, 1000}
	g.Sweep = curve.Sweep{MaxSpeed: 1.0, Steps: 10}
	return g.Generate()
}

func TestWriteCSV(t *testing.T) {
	table := sampleTable(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(table.Rows)+1 {
		t.Fatalf("expected %d lines, got %d", len(table.Rows)+1, len(lines))
	}
	if lines[0] != "speed_mps,450 W,1000 W" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	for i, line := range lines[1:] {
		if got := len(strings.Split(line, ",")); got != 3 {
			t.Errorf("record %d: expected 3 fields, got %d", i, got)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	table := sampleTable(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "garage-48v", table); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data Data
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output not valid json: %v", err)
	}
	if data.Preset != "garage-48v" {
		t.Errorf("expected preset name, got %q", data.Preset)
	}
	if data.Samples != len(table.Rows) {
		t.Errorf("expected %d samples, got %d", len(table.Rows), data.Samples)
	}
	if data.MaxSpeed != 1.0 {
		t.Errorf("expected max speed 1.0, got %f", data.MaxSpeed)
	}
	for _, lbl := range table.Labels {
		if len(data.Series[lbl]) != len(table.Rows) {
			t.Errorf("series %s: wrong length %d", lbl, len(data.Series[lbl]))
		}
	}
	if data.MaxY != table.MaxY {
		t.Errorf("expected max_y %f, got %f", table.MaxY, data.MaxY)
	}
}
