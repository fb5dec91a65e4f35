// Package dataset loads the World Bank Gini table and repairs its sparse
// per-country coverage.
package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Row is one entity/year observation. Missing Gini or population values are
// NaN; a missing continent is the empty string.
type Row struct {
	Entity      string
	Code        string
	Year        int
	GiniPreTax  float64
	GiniPostTax float64
	Population  float64
	Continent   string
}

// Table is an in-memory Gini dataset. Transform methods return new tables
// and never modify the receiver.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// LoadOptions holds column-name mappings for CSV loading.
type LoadOptions struct {
	EntityColumn     string // Country name (required)
	CodeColumn       string // ISO code (optional)
	YearColumn       string // Observation year (required)
	PreTaxColumn     string // Pre-tax Gini (required)
	PostTaxColumn    string // Post-tax Gini (required)
	PopulationColumn string // Population (optional)
	ContinentColumn  string // Continent, populated for one year per entity (optional)
}

// DefaultLoadOptions returns the column names used by the published
// World Bank extract.
func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		EntityColumn:     "Entity",
		CodeColumn:       "Code",
		YearColumn:       "Year",
		PreTaxColumn:     "gini_pretax",
		PostTaxColumn:    "gini_posttax",
		PopulationColumn: "population",
		ContinentColumn:  "continent",
	}
}

// Load loads a Gini dataset from a CSV file.
func Load(filename string, opts *LoadOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadReader(file, opts)
}

// LoadReader loads a Gini dataset from an io.Reader. Rows without a usable
// entity or year are skipped; unparseable numeric cells become missing
// values rather than errors.
func LoadReader(r io.Reader, opts *LoadOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			opts.YearColumn:       series.Int,
			opts.PreTaxColumn:     series.Float,
			opts.PostTaxColumn:    series.Float,
			opts.PopulationColumn: series.Float,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	have := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, required := range []string{
		opts.EntityColumn,
		opts.YearColumn,
		opts.PreTaxColumn,
		opts.PostTaxColumn,
	} {
		if !have[required] {
			return nil, fmt.Errorf("column %q not found in input", required)
		}
	}

	entity := df.Col(opts.EntityColumn)
	year := df.Col(opts.YearColumn)
	pre := df.Col(opts.PreTaxColumn)
	post := df.Col(opts.PostTaxColumn)

	var code, pop, continent series.Series
	hasCode := have[opts.CodeColumn] && opts.CodeColumn != ""
	hasPop := have[opts.PopulationColumn] && opts.PopulationColumn != ""
	hasContinent := have[opts.ContinentColumn] && opts.ContinentColumn != ""
	if hasCode {
		code = df.Col(opts.CodeColumn)
	}
	if hasPop {
		pop = df.Col(opts.PopulationColumn)
	}
	if hasContinent {
		continent = df.Col(opts.ContinentColumn)
	}

	rows := make([]Row, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		y, err := year.Elem(i).Int()
		if err != nil {
			continue
		}

		row := Row{
			Entity:      cleanString(entity.Elem(i)),
			Year:        y,
			GiniPreTax:  pre.Elem(i).Float(),
			GiniPostTax: post.Elem(i).Float(),
			Population:  math.NaN(),
		}
		if row.Entity == "" {
			continue
		}
		if hasCode {
			row.Code = cleanString(code.Elem(i))
		}
		if hasPop {
			row.Population = pop.Elem(i).Float()
		}
		if hasContinent {
			row.Continent = cleanString(continent.Elem(i))
		}

		rows = append(rows, row)
	}

	return &Table{Rows: rows}, nil
}

func cleanString(e series.Element) string {
	if e.IsNA() {
		return ""
	}
	s := strings.TrimSpace(e.String())
	if s == "NaN" || s == "NA" {
		return ""
	}
	return s
}
