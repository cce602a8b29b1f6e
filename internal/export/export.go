// Package export writes the shareable artifacts for a design: the parameter
// summary CSV, the profile curves CSV, the design document itself and a
// Markdown report.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"biodesign/internal/design"
	"biodesign/internal/profile"
	"biodesign/internal/summary"
)

// Artifact file names written by WriteAll.
const (
	SummaryFileName = "summary.csv"
	CurvesFileName  = "curves.csv"
	DesignFileName  = "design.yaml"
	ReportFileName  = "report.md"
)

// WriteSummaryCSV writes the canonical parameter summary for d.
func WriteSummaryCSV(w io.Writer, d *design.Design) error {
	return summary.WriteCSV(w, summary.Format(d.Config, d.Parameters))
}

// WriteCurvesCSV computes the profile curves for d's duration and writes
// them as a four-column CSV document.
func WriteCurvesCSV(w io.Writer, d *design.Design) error {
	curves, err := profile.ComputeDefault(float64(d.Parameters.Duration))
	if err != nil {
		return err
	}
	return WriteCurves(w, curves)
}

// WriteCurves writes already-computed curves as CSV.
func WriteCurves(w io.Writer, curves *profile.Curves) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_h", "biomass_g_l", "substrate_g_l", "product_g_l"}); err != nil {
		return err
	}
	for i := 0; i < curves.Len(); i++ {
		rec := []string{
			strconv.FormatFloat(curves.Time[i], 'f', 3, 64),
			strconv.FormatFloat(curves.Biomass[i], 'f', 4, 64),
			strconv.FormatFloat(curves.Substrate[i], 'f', 4, 64),
			strconv.FormatFloat(curves.Product[i], 'f', 4, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAll writes every artifact for d into dir, creating it if needed.
// The four writers are independent, so they fan out concurrently.
func WriteAll(ctx context.Context, dir string, d *design.Design) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeFile(filepath.Join(dir, SummaryFileName), func(w io.Writer) error {
			return WriteSummaryCSV(w, d)
		})
	})
	g.Go(func() error {
		return writeFile(filepath.Join(dir, CurvesFileName), func(w io.Writer) error {
			return WriteCurvesCSV(w, d)
		})
	})
	g.Go(func() error {
		return d.Save(filepath.Join(dir, DesignFileName))
	})
	g.Go(func() error {
		return writeFile(filepath.Join(dir, ReportFileName), func(w io.Writer) error {
			_, err := io.WriteString(w, Report(d))
			return err
		})
	})
	return g.Wait()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
