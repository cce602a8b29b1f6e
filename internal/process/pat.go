package process

import "fmt"

// PAT is the process analytical technology strategy: which online monitors
// run during the process, plus the offline sampling plan.
type PAT struct {
	BiomassProbe    bool `yaml:"biomass_probe"`
	OffgasAnalysis  bool `yaml:"offgas_analysis"`
	GlucoseAnalyzer bool `yaml:"glucose_analyzer"`
	Raman           bool `yaml:"raman"`
	HPLC            bool `yaml:"hplc"`

	SamplingInterval float64 `yaml:"sampling_interval"` // hours
	SampleVolume     float64 `yaml:"sample_volume"`     // mL
}

// DefaultPAT returns the default monitoring strategy: the routine online
// monitors on, the spectroscopic and chromatographic ones off.
func DefaultPAT() PAT {
	return PAT{
		BiomassProbe:     true,
		OffgasAnalysis:   true,
		GlucoseAnalyzer:  true,
		Raman:            false,
		HPLC:             false,
		SamplingInterval: 12.0,
		SampleVolume:     5.0,
	}
}

// Monitors returns the names of the enabled online monitors in display
// order.
func (p PAT) Monitors() []string {
	var out []string
	for _, m := range []struct {
		name string
		on   bool
	}{
		{"Biomass Probe", p.BiomassProbe},
		{"Offgas Analysis", p.OffgasAnalysis},
		{"Glucose Analyzer", p.GlucoseAnalyzer},
		{"Raman Spectroscopy", p.Raman},
		{"HPLC", p.HPLC},
	} {
		if m.on {
			out = append(out, m.name)
		}
	}
	return out
}

// Validate checks the sampling plan.
func (p PAT) Validate() error {
	if p.SamplingInterval <= 0 {
		return fmt.Errorf("%w: sampling interval %.1f hours must be positive", ErrInvalidArgument, p.SamplingInterval)
	}
	if p.SampleVolume <= 0 {
		return fmt.Errorf("%w: sample volume %.1f mL must be positive", ErrInvalidArgument, p.SampleVolume)
	}
	return nil
}
