package dataset

import (
	"math"
	"sort"

	"github.com/sartorproj/ginireport/timeseries"
)

// Entities returns the distinct entity names in the table, sorted.
func (t *Table) Entities() []string {
	seen := make(map[string]bool)
	var entities []string
	for _, r := range t.Rows {
		if !seen[r.Entity] {
			seen[r.Entity] = true
			entities = append(entities, r.Entity)
		}
	}
	sort.Strings(entities)
	return entities
}

// EntitySeries extracts one entity's annual series for a metric. The rows
// are ordered by year and the metric selector receives each row.
func (t *Table) EntitySeries(entity string, metric func(Row) float64) *timeseries.Series {
	rows := t.entityRows(entity)
	years := make([]int, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		years[i] = r.Year
		values[i] = metric(r)
	}
	s, _ := timeseries.NewWithYears(years, values)
	s.Name = entity
	return s
}

// FillGaps repairs each entity's pre-tax and post-tax series with windowed
// propagation, then drops rows where both metrics are still missing.
// The result is ordered by entity and year.
func (t *Table) FillGaps(window int) *Table {
	out := &Table{Rows: make([]Row, 0, len(t.Rows))}
	for _, entity := range t.Entities() {
		rows := t.entityRows(entity)

		pre := make([]float64, len(rows))
		post := make([]float64, len(rows))
		for i, r := range rows {
			pre[i] = r.GiniPreTax
			post[i] = r.GiniPostTax
		}
		pre = timeseries.FillValues(pre, window)
		post = timeseries.FillValues(post, window)

		for i := range rows {
			rows[i].GiniPreTax = pre[i]
			rows[i].GiniPostTax = post[i]
			if math.IsNaN(pre[i]) && math.IsNaN(post[i]) {
				continue
			}
			out.Rows = append(out.Rows, rows[i])
		}
	}
	return out
}

// SpreadContinent propagates each entity's continent across all of its
// rows. Unlike the Gini repair there is no window limit: the attribute is
// recorded at a single reference year and applies to the whole series.
func (t *Table) SpreadContinent() *Table {
	out := &Table{Rows: make([]Row, 0, len(t.Rows))}
	for _, entity := range t.Entities() {
		rows := t.entityRows(entity)

		last := ""
		for i := range rows {
			if rows[i].Continent != "" {
				last = rows[i].Continent
			} else if last != "" {
				rows[i].Continent = last
			}
		}
		last = ""
		for i := len(rows) - 1; i >= 0; i-- {
			if rows[i].Continent != "" {
				last = rows[i].Continent
			} else if last != "" {
				rows[i].Continent = last
			}
		}

		out.Rows = append(out.Rows, rows...)
	}
	return out
}

// Year returns the rows observed in year y.
func (t *Table) Year(y int) *Table {
	out := &Table{}
	for _, r := range t.Rows {
		if r.Year == y {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// Complete returns the rows where both Gini metrics and the continent are
// known.
func (t *Table) Complete() *Table {
	out := &Table{}
	for _, r := range t.Rows {
		if math.IsNaN(r.GiniPreTax) || math.IsNaN(r.GiniPostTax) || r.Continent == "" {
			continue
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// entityRows returns copies of the entity's rows ordered by year.
func (t *Table) entityRows(entity string) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.Entity == entity {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}
