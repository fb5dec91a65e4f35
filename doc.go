// Package ginireport renders a comparison of income inequality before and
// after taxes and transfers.
//
// The repository is a single analytical report: it loads a World Bank
// Gini-coefficient dataset, repairs each country's sparse time-series
// coverage with a windowed value-propagation heuristic, and renders two
// static charts (a scatter plot and a lollipop chart) comparing pre-tax
// and post-tax inequality by country for one year.
//
// # Quick Start
//
// Load, repair and chart a dataset:
//
//	table, _ := dataset.Load("gini.csv", nil)
//	table = table.FillGaps(timeseries.DefaultFillWindow)
//	table = table.SpreadContinent()
//
//	snap := report.Build(table, 2020)
//	_ = charts.Scatter(snap, "gini_scatter_2020.png", nil)
//	_ = charts.Lollipop(snap, "gini_lollipop_2020.png", nil)
//
// Or run the command:
//
//	ginireport --input gini.csv --outdir out --year 2020
//
// # Packages
//
// The repository is organized into the following packages:
//
//   - timeseries: annual series, summary statistics, windowed gap repair
//   - dataset: CSV loading and the per-country repair passes
//   - report: single-year snapshot, continent summaries, XLSX export
//   - charts: scatter and lollipop chart rendering
package ginireport
