package config

import "sort"

// Presets are complete ready-to-run configurations for common cable
// machine builds.
var Presets = map[string]*Config{
	"garage-48v": {
		Motor: MotorConfig{
			Kt: 0.272, Rll: 0.164, Lll: 235e-6, Winding: "delta",
			CopperTemp: 25, BusVoltage: 48, Utilization: 0.95,
		},
		Limits: LimitsConfig{
			MaxPhaseCurrent: 72, Direction: "motoring",
			SupplyWatts: []int{450, 1000, 1500, 2000, 3000, 5000},
		},
		Transmission: TransmissionConfig{Ratio: 10, Efficiency: 0.9, DrumRadius: 0.05},
		Sweep:        SweepConfig{MaxSpeed: 3.0, Steps: 120},
	},
	"compact-24v": {
		Motor: MotorConfig{
			Kv: 135, Rll: 0.082, Lll: 54e-6, Winding: "wye",
			CopperTemp: 40, BusVoltage: 24, Utilization: 0.92,
		},
		Limits: LimitsConfig{
			MaxPhaseCurrent: 40, Direction: "motoring",
			SupplyWatts: []int{450, 1000, 1500},
		},
		Transmission: TransmissionConfig{Ratio: 6, Efficiency: 0.92, DrumRadius: 0.035},
		Sweep:        SweepConfig{MaxSpeed: 2.0, Steps: 100},
	},
	"highspeed-72v": {
		Motor: MotorConfig{
			Kt: 0.21, Rll: 0.095, Lll: 180e-6, Winding: "delta",
			CopperTemp: 60, BusVoltage: 72, Utilization: 0.95,
		},
		Limits: LimitsConfig{
			MaxPhaseCurrent: 90, MaxFieldWeakening: 35, Direction: "motoring",
			SupplyWatts: []int{1500, 3000, 5000},
		},
		Transmission: TransmissionConfig{Ratio: 8, Efficiency: 0.88, DrumRadius: 0.06},
		Sweep:        SweepConfig{MaxSpeed: 6.0, Steps: 200},
	},
	"eccentric-brake": {
		Motor: MotorConfig{
			Kt: 0.272, Rll: 0.164, Lll: 235e-6, Winding: "delta",
			CopperTemp: 25, BusVoltage: 48, Utilization: 0.95,
		},
		Limits: LimitsConfig{
			MaxPhaseCurrent: 72, Direction: "regenerating",
			SupplyWatts: []int{450, 1000, 1500, 2000, 3000, 5000},
		},
		Transmission: TransmissionConfig{Ratio: 10, Efficiency: 0.9, DrumRadius: 0.05},
		Sweep:        SweepConfig{MaxSpeed: 3.0, Steps: 120},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
