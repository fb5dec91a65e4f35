package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX exports the snapshot to an Excel workbook with one sheet for
// the per-country table and one for the continent summary.
func WriteXLSX(s *Snapshot, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	countrySheet := "Countries"
	if err := f.SetSheetName("Sheet1", countrySheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	headers := []string{
		"Country", "Code", "Continent",
		"Gini (pre-tax)", "Gini (post-tax)",
		"Reduction", "Reduction %", "Population",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(countrySheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(countrySheet, "A1", "H1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(countrySheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(countrySheet, "C", "H", 14); err != nil {
		return err
	}

	for i, c := range s.Countries {
		row := i + 2
		f.SetCellValue(countrySheet, fmt.Sprintf("A%d", row), c.Entity)
		f.SetCellValue(countrySheet, fmt.Sprintf("B%d", row), c.Code)
		f.SetCellValue(countrySheet, fmt.Sprintf("C%d", row), c.Continent)
		f.SetCellValue(countrySheet, fmt.Sprintf("D%d", row), c.PreTax)
		f.SetCellValue(countrySheet, fmt.Sprintf("E%d", row), c.PostTax)
		f.SetCellValue(countrySheet, fmt.Sprintf("F%d", row), c.Reduction)
		f.SetCellValue(countrySheet, fmt.Sprintf("G%d", row), c.ReductionPct)
		if !math.IsNaN(c.Population) {
			f.SetCellValue(countrySheet, fmt.Sprintf("H%d", row), c.Population)
		}
	}

	continentSheet := "Continents"
	if _, err := f.NewSheet(continentSheet); err != nil {
		return err
	}
	continentHeaders := []string{
		"Continent", "Countries",
		"Mean Gini (pre-tax)", "Mean Gini (post-tax)", "Mean reduction",
	}
	for i, h := range continentHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(continentSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(continentSheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(continentSheet, "A", "E", 18); err != nil {
		return err
	}

	for i, cs := range s.ByContinent() {
		row := i + 2
		f.SetCellValue(continentSheet, fmt.Sprintf("A%d", row), cs.Continent)
		f.SetCellValue(continentSheet, fmt.Sprintf("B%d", row), cs.Countries)
		f.SetCellValue(continentSheet, fmt.Sprintf("C%d", row), cs.MeanPreTax)
		f.SetCellValue(continentSheet, fmt.Sprintf("D%d", row), cs.MeanPostTax)
		f.SetCellValue(continentSheet, fmt.Sprintf("E%d", row), cs.MeanReduction)
	}

	return f.SaveAs(filename)
}
