// Package profile computes the illustrative growth-kinetics curves shown on
// the dashboard: logistic biomass growth, first-order substrate depletion and
// saturating product formation. The kinetic constants are fixed reference
// values and are intentionally not derived from the user's process
// parameters; the curves illustrate the shape of a run, they do not predict
// it.
package profile

import (
	"fmt"
	"math"

	"biodesign/internal/process"
)

// Kinetic constants for the reference curves.
const (
	InitialBiomass   = 0.1  // X0, g/L
	GrowthRate       = 0.1  // mu, 1/h
	CarryingCapacity = 10.0 // K, g/L
	InitialSubstrate = 10.0 // S0, g/L
	SubstrateDecay   = 0.05 // ks, 1/h
	ProductRate      = 0.03 // kp, 1/h
)

// DefaultSampleCount is the number of samples used by the dashboard plots.
const DefaultSampleCount = 100

// Curves holds the three profile curves sampled on a shared time axis.
// All four slices have identical length; index i of each curve corresponds
// to Time[i]. A Curves value is never mutated after Compute returns it.
type Curves struct {
	Time      []float64 // hours, [0, duration] inclusive
	Biomass   []float64 // g/L
	Substrate []float64 // g/L
	Product   []float64 // g/L
}

// Len returns the number of samples per curve.
func (c *Curves) Len() int { return len(c.Time) }

// Compute evaluates the three reference curves over sampleCount evenly
// spaced points spanning [0, durationHours], both endpoints included.
// It is a total, deterministic function of its two arguments.
func Compute(durationHours float64, sampleCount int) (*Curves, error) {
	if durationHours <= 0 {
		return nil, fmt.Errorf("%w: duration %.2f hours must be positive", process.ErrInvalidArgument, durationHours)
	}
	if sampleCount < 2 {
		return nil, fmt.Errorf("%w: sample count %d must be at least 2", process.ErrInvalidArgument, sampleCount)
	}

	c := &Curves{
		Time:      make([]float64, sampleCount),
		Biomass:   make([]float64, sampleCount),
		Substrate: make([]float64, sampleCount),
		Product:   make([]float64, sampleCount),
	}

	step := durationHours / float64(sampleCount-1)
	for i := 0; i < sampleCount; i++ {
		t := float64(i) * step
		if i == sampleCount-1 {
			t = durationHours // avoid accumulated rounding on the endpoint
		}
		c.Time[i] = t
		c.Biomass[i] = CarryingCapacity / (1 + ((CarryingCapacity-InitialBiomass)/InitialBiomass)*math.Exp(-GrowthRate*t))
		c.Substrate[i] = InitialSubstrate * math.Exp(-SubstrateDecay*t)
		c.Product[i] = CarryingCapacity * (1 - math.Exp(-ProductRate*t))
	}
	return c, nil
}

// ComputeDefault evaluates the curves with the dashboard's sample count.
func ComputeDefault(durationHours float64) (*Curves, error) {
	return Compute(durationHours, DefaultSampleCount)
}
