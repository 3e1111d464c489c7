// Package export writes scenario coverage tables for the external plotting
// and reporting collaborators.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// CSVExporter writes one flat (scenario, combination, level, quantile,
// coverage) table across all scenarios.
type CSVExporter struct {
	Path string
}

// NewCSVExporter creates an exporter targeting the given file path.
func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{Path: path}
}

// Export writes the coverage rows of every result.
func (e *CSVExporter) Export(results []*scenario.Result) error {
	f, err := os.Create(e.Path)
	if err != nil {
		return errors.ExportFailed("cannot create "+e.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"scenario", "combination", "probability", "quantile", "coverage"}); err != nil {
		return errors.ExportFailed("cannot write header", err)
	}

	for _, res := range results {
		for _, row := range res.Table() {
			record := []string{
				row.Scenario,
				row.Combination,
				strconv.FormatFloat(row.Level, 'f', 2, 64),
				strconv.FormatFloat(row.Quantile, 'g', -1, 64),
				strconv.FormatFloat(row.Coverage, 'g', -1, 64),
			}
			if err := w.Write(record); err != nil {
				return errors.ExportFailed("cannot write row", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.ExportFailed("cannot flush "+e.Path, err)
	}
	return nil
}
