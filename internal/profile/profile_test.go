package profile

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"biodesign/internal/process"
)

func TestCompute_ShapeAndEndpoints(t *testing.T) {
	for _, tc := range []struct {
		duration float64
		samples  int
	}{
		{168, 100},
		{1, 2},
		{24, 3},
		{1000, 500},
	} {
		c, err := Compute(tc.duration, tc.samples)
		if err != nil {
			t.Fatalf("Compute(%v, %d) failed: %v", tc.duration, tc.samples, err)
		}
		if c.Len() != tc.samples {
			t.Errorf("Compute(%v, %d): expected %d samples, got %d", tc.duration, tc.samples, tc.samples, c.Len())
		}
		for name, s := range map[string][]float64{"biomass": c.Biomass, "substrate": c.Substrate, "product": c.Product} {
			if len(s) != tc.samples {
				t.Errorf("Compute(%v, %d): %s has %d samples", tc.duration, tc.samples, name, len(s))
			}
		}
		if c.Time[0] != 0 {
			t.Errorf("first time point should be 0, got %v", c.Time[0])
		}
		if c.Time[len(c.Time)-1] != tc.duration {
			t.Errorf("last time point should be %v, got %v", tc.duration, c.Time[len(c.Time)-1])
		}
	}
}

func TestCompute_InitialValues(t *testing.T) {
	c, err := Compute(168, 100)
	if err != nil {
		t.Fatal(err)
	}
	const tol = 1e-6
	if math.Abs(c.Biomass[0]-0.1) > tol {
		t.Errorf("biomass at t=0 should be ~0.1, got %v", c.Biomass[0])
	}
	if math.Abs(c.Substrate[0]-10.0) > tol {
		t.Errorf("substrate at t=0 should be ~10.0, got %v", c.Substrate[0])
	}
	if math.Abs(c.Product[0]-0.0) > tol {
		t.Errorf("product at t=0 should be ~0.0, got %v", c.Product[0])
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	c, err := Compute(168, 100)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < c.Len(); i++ {
		if c.Biomass[i] < c.Biomass[i-1] {
			t.Fatalf("biomass decreased at sample %d: %v -> %v", i, c.Biomass[i-1], c.Biomass[i])
		}
		if c.Substrate[i] > c.Substrate[i-1] {
			t.Fatalf("substrate increased at sample %d: %v -> %v", i, c.Substrate[i-1], c.Substrate[i])
		}
		if c.Product[i] < c.Product[i-1] {
			t.Fatalf("product decreased at sample %d: %v -> %v", i, c.Product[i-1], c.Product[i])
		}
	}
}

func TestCompute_Bounds(t *testing.T) {
	c, err := Compute(1000, 200)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < c.Len(); i++ {
		if c.Substrate[i] < 0 {
			t.Errorf("substrate negative at sample %d: %v", i, c.Substrate[i])
		}
		if c.Biomass[i] > CarryingCapacity {
			t.Errorf("biomass above carrying capacity at sample %d: %v", i, c.Biomass[i])
		}
		if c.Product[i] > CarryingCapacity {
			t.Errorf("product above %v at sample %d: %v", CarryingCapacity, i, c.Product[i])
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a, err := Compute(72, 100)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(72, 100)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical inputs produced different curves (-first +second):\n%s", diff)
	}
}

func TestCompute_InvalidArguments(t *testing.T) {
	for _, tc := range []struct {
		name     string
		duration float64
		samples  int
	}{
		{"zero duration", 0, 100},
		{"negative duration", -24, 100},
		{"one sample", 168, 1},
		{"zero samples", 168, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.duration, tc.samples)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, process.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestComputeDefault_SampleCount(t *testing.T) {
	c, err := ComputeDefault(168)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != DefaultSampleCount {
		t.Errorf("expected %d samples, got %d", DefaultSampleCount, c.Len())
	}
}
