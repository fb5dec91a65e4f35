// Package dataset loads and repairs the World Bank Gini dataset.
//
// The dataset has one row per country per year with two sparse metrics
// (pre-tax and post-tax Gini) and a continent attribute recorded at a
// single reference year. Parsing is backed by gota dataframes; rows are
// then held as typed values for the repair passes.
//
// # Loading
//
// Load a CSV with the published column names:
//
//	table, err := dataset.Load("gini.csv", nil)
//
// Or map custom column names:
//
//	opts := dataset.DefaultLoadOptions()
//	opts.PreTaxColumn = "gini_market"
//	opts.PostTaxColumn = "gini_disposable"
//	table, err := dataset.Load("gini.csv", opts)
//
// # Repair
//
// Repair coverage and prepare a complete single-year view:
//
//	table = table.FillGaps(timeseries.DefaultFillWindow)
//	table = table.SpreadContinent()
//	snapshot := table.Year(2020).Complete()
//
// FillGaps applies the windowed propagation per entity and per metric and
// drops rows still missing both metrics. SpreadContinent propagates the
// continent across each entity's rows without a window limit. Transform
// methods return new tables and leave the receiver unchanged.
package dataset
