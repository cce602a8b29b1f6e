package summary

import (
	"encoding/csv"
	"io"
)

// WriteCSV serializes rows as a two-column CSV document with the fixed
// header "Parameter,Value". Values containing commas are quoted per
// RFC 4180, so the output is always unambiguous.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Parameter", "Value"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Label, r.Value}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
