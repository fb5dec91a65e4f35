// Package report builds the single-year inequality comparison from the
// cleaned dataset and exports it.
package report

import (
	"sort"

	"github.com/sartorproj/ginireport/dataset"
	"github.com/sartorproj/ginireport/timeseries"
)

// Country is one complete observation in the snapshot year.
type Country struct {
	Entity       string
	Code         string
	Continent    string
	PreTax       float64
	PostTax      float64
	Population   float64
	Reduction    float64 // PreTax - PostTax
	ReductionPct float64 // Reduction as a percentage of PreTax
}

// Snapshot is the set of countries with both Gini metrics and a continent
// known for one year, ordered by pre-tax Gini descending.
type Snapshot struct {
	Year      int
	Countries []Country
}

// Build filters the table to the given year, keeps only complete rows and
// derives the redistribution columns.
func Build(t *dataset.Table, year int) *Snapshot {
	rows := t.Year(year).Complete().Rows

	countries := make([]Country, 0, len(rows))
	for _, r := range rows {
		c := Country{
			Entity:     r.Entity,
			Code:       r.Code,
			Continent:  r.Continent,
			PreTax:     r.GiniPreTax,
			PostTax:    r.GiniPostTax,
			Population: r.Population,
			Reduction:  r.GiniPreTax - r.GiniPostTax,
		}
		if r.GiniPreTax != 0 {
			c.ReductionPct = c.Reduction / r.GiniPreTax * 100
		}
		countries = append(countries, c)
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].PreTax != countries[j].PreTax {
			return countries[i].PreTax > countries[j].PreTax
		}
		return countries[i].Entity < countries[j].Entity
	})

	return &Snapshot{Year: year, Countries: countries}
}

// Top returns the first n countries by pre-tax Gini, or all of them when n
// is non-positive or exceeds the snapshot size.
func (s *Snapshot) Top(n int) []Country {
	if n <= 0 || n > len(s.Countries) {
		n = len(s.Countries)
	}
	return s.Countries[:n]
}

// Continents returns the distinct continents in the snapshot, sorted.
func (s *Snapshot) Continents() []string {
	seen := make(map[string]bool)
	var continents []string
	for _, c := range s.Countries {
		if !seen[c.Continent] {
			seen[c.Continent] = true
			continents = append(continents, c.Continent)
		}
	}
	sort.Strings(continents)
	return continents
}

// ContinentSummary aggregates the snapshot for one continent.
type ContinentSummary struct {
	Continent     string
	Countries     int
	MeanPreTax    float64
	MeanPostTax   float64
	MeanReduction float64
}

// ByContinent summarizes the snapshot per continent, sorted by continent
// name.
func (s *Snapshot) ByContinent() []ContinentSummary {
	var summaries []ContinentSummary
	for _, continent := range s.Continents() {
		var pre, post, red []float64
		for _, c := range s.Countries {
			if c.Continent != continent {
				continue
			}
			pre = append(pre, c.PreTax)
			post = append(post, c.PostTax)
			red = append(red, c.Reduction)
		}
		summaries = append(summaries, ContinentSummary{
			Continent:     continent,
			Countries:     len(pre),
			MeanPreTax:    timeseries.New(pre).Mean(),
			MeanPostTax:   timeseries.New(post).Mean(),
			MeanReduction: timeseries.New(red).Mean(),
		})
	}
	return summaries
}
