package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/seralva/forcecurve/internal/curve"
)

// Data is the JSON export shape: one speed axis plus one force column
// per supply limit.
type Data struct {
	Preset   string               `json:"preset,omitempty"`
	Labels   []string             `json:"labels"`
	Speeds   []float64            `json:"speeds"`
	Series   map[string][]float64 `json:"series"`
	MaxY     float64              `json:"max_y"`
	Samples  int                  `json:"samples"`
	MaxSpeed float64              `json:"max_speed"`
}

func newData(preset string, t *curve.Table) Data {
	d := Data{
		Preset:  preset,
		Labels:  t.Labels,
		Speeds:  t.Speeds,
		Series:  make(map[string][]float64, len(t.Labels)),
		MaxY:    t.MaxY,
		Samples: len(t.Rows),
	}
	if len(t.Speeds) > 0 {
		d.MaxSpeed = t.Speeds[len(t.Speeds)-1]
	}
	for _, s := range t.Series() {
		d.Series[s.Label] = s.Values
	}
	return d
}

func WriteJSON(w io.Writer, preset string, t *curve.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newData(preset, t))
}

func ExportJSON(path, preset string, t *curve.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, preset, t)
}

// WriteCSV emits a header of speed_mps plus one force_lbf column per
// limit, then one record per sample.
func WriteCSV(w io.Writer, t *curve.Table) error {
	cw := csv.NewWriter(w)

	header := append([]string{"speed_mps"}, t.Labels...)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range t.Rows {
		record[0] = strconv.FormatFloat(row.Speed, 'f', 4, 64)
		for i, lbl := range t.Labels {
			record[i+1] = strconv.FormatFloat(row.Forces[lbl], 'f', 3, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, t *curve.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, t)
}
