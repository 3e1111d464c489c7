package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Gogonemnem/FDA/domain/scenario"
	"github.com/Gogonemnem/FDA/internal/errors"
)

// ExcelExporter writes one workbook with a coverage sheet per scenario and
// a summary sheet of per-combination statistics.
type ExcelExporter struct {
	Path string
}

// NewExcelExporter creates an exporter targeting the given .xlsx path.
func NewExcelExporter(path string) *ExcelExporter {
	return &ExcelExporter{Path: path}
}

// Export writes the workbook.
func (e *ExcelExporter) Export(results []*scenario.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeSummary(f, results); err != nil {
		return err
	}
	for _, res := range results {
		if err := e.writeScenario(f, res); err != nil {
			return err
		}
	}

	// Drop the default sheet left by NewFile.
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(e.Path); err != nil {
		return errors.ExportFailed("cannot save "+e.Path, err)
	}
	return nil
}

func (e *ExcelExporter) writeScenario(f *excelize.File, res *scenario.Result) error {
	sheet := res.Config.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.ExportFailed("cannot create sheet "+sheet, err)
	}

	headers := []string{"scenario", "combination", "probability", "quantile", "coverage"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.ExportFailed("cannot write header", err)
		}
	}

	for rowIdx, row := range res.Table() {
		values := []interface{}{row.Scenario, row.Combination, row.Level, row.Quantile, row.Coverage}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.ExportFailed("cannot write row", err)
			}
		}
	}
	return nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, results []*scenario.Result) error {
	const sheet = "summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.ExportFailed("cannot create summary sheet", err)
	}

	headers := []string{"scenario", "combination", "completed", "failed", "mean", "median", "stddev", "min", "max"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return errors.ExportFailed("cannot write summary header", err)
		}
	}

	rowIdx := 2
	for _, res := range results {
		for _, comb := range res.Combinations {
			values := []interface{}{
				res.Config.Name,
				comb.Combination.Label(),
				comb.Completed(),
				comb.Failed,
				comb.Summary.Mean,
				comb.Summary.Median,
				comb.Summary.StdDev,
				comb.Summary.Min,
				comb.Summary.Max,
			}
			for c, v := range values {
				cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return errors.ExportFailed(fmt.Sprintf("cannot write summary row %d", rowIdx), err)
				}
			}
			rowIdx++
		}
	}
	return nil
}
