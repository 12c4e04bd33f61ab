package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seralva/forcecurve/internal/curve"
	"github.com/seralva/forcecurve/internal/motor"
)

type Config struct {
	Motor        MotorConfig        `yaml:"motor"`
	Limits       LimitsConfig       `yaml:"limits"`
	Transmission TransmissionConfig `yaml:"transmission"`
	Sweep        SweepConfig        `yaml:"sweep"`
}

type MotorConfig struct {
	Kt          float64 `yaml:"kt"`          // N·m/A; ignored when kv set
	Kv          float64 `yaml:"kv"`          // rpm/V; authoritative when > 0
	Rll         float64 `yaml:"rll"`         // Ω line-to-line
	Lll         float64 `yaml:"lll"`         // H line-to-line
	Winding     string  `yaml:"winding"`     // wye | delta
	CopperTemp  float64 `yaml:"copper_temp"` // °C
	BusVoltage  float64 `yaml:"bus_voltage"` // V
	Utilization float64 `yaml:"utilization"` // 0..1
}

type LimitsConfig struct {
	MaxPhaseCurrent   float64 `yaml:"max_phase_current"`   // A
	MaxFieldWeakening float64 `yaml:"max_field_weakening"` // A
	Direction         string  `yaml:"direction"`           // motoring | regenerating
	SupplyWatts       []int   `yaml:"supply_watts"`
}

type TransmissionConfig struct {
	Ratio      float64 `yaml:"ratio"`
	Efficiency float64 `yaml:"efficiency"`
	DrumRadius float64 `yaml:"drum_radius"` // m
}

type SweepConfig struct {
	MaxSpeed float64 `yaml:"max_speed"` // m/s
	Steps    int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	m := motor.NewParams()
	l := motor.NewLimits()
	tr := motor.NewTransmission()
	sw := curve.NewSweep()
	return &Config{
		Motor: MotorConfig{
			Kt:          m.Kt,
			Rll:         m.Rll,
			Lll:         m.Lll,
			Winding:     m.Winding.String(),
			CopperTemp:  m.CopperTemp,
			BusVoltage:  m.BusVoltage,
			Utilization: m.Utilization,
		},
		Limits: LimitsConfig{
			MaxPhaseCurrent:   l.IMax,
			MaxFieldWeakening: l.IdFWMax,
			Direction:         l.Direction.String(),
			SupplyWatts:       append([]int(nil), curve.DefaultLimits...),
		},
		Transmission: TransmissionConfig{
			Ratio:      tr.Ratio,
			Efficiency: tr.Efficiency,
			DrumRadius: tr.DrumRadius,
		},
		Sweep: SweepConfig{MaxSpeed: sw.MaxSpeed, Steps: sw.Steps},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Generator builds the curve generator described by this config.
func (c *Config) Generator() (curve.Generator, error) {
	winding, err := motor.ParseWinding(c.Motor.Winding)
	if err != nil {
		return curve.Generator{}, fmt.Errorf("motor config: %w", err)
	}
	dir, err := motor.ParseDirection(c.Limits.Direction)
	if err != nil {
		return curve.Generator{}, fmt.Errorf("limits config: %w", err)
	}
	return curve.Generator{
		Motor: motor.Params{
			Kt:          c.Motor.Kt,
			Kv:          c.Motor.Kv,
			Rll:         c.Motor.Rll,
			Lll:         c.Motor.Lll,
			Winding:     winding,
			CopperTemp:  c.Motor.CopperTemp,
			BusVoltage:  c.Motor.BusVoltage,
			Utilization: c.Motor.Utilization,
		},
		Limits: motor.Limits{
			IMax:      c.Limits.MaxPhaseCurrent,
			IdFWMax:   c.Limits.MaxFieldWeakening,
			Direction: dir,
		},
		Transmission: motor.Transmission{
			Ratio:      c.Transmission.Ratio,
			Efficiency: c.Transmission.Efficiency,
			DrumRadius: c.Transmission.DrumRadius,
		},
		Sweep: curve.Sweep{MaxSpeed: c.Sweep.MaxSpeed, Steps: c.Sweep.Steps},
		Watts: c.Limits.SupplyWatts,
	}, nil
}
