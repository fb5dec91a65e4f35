package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/ginireport/dataset"
)

func snapshotTable() *dataset.Table {
	nan := math.NaN()
	return &dataset.Table{Rows: []dataset.Row{
		{Entity: "Atlantis", Code: "ATL", Year: 2020, GiniPreTax: 0.50, GiniPostTax: 0.30, Population: 1e7, Continent: "Oceania"},
		{Entity: "Borduria", Code: "BOR", Year: 2020, GiniPreTax: 0.46, GiniPostTax: 0.31, Population: 4e6, Continent: "Europe"},
		{Entity: "Syldavia", Code: "SYL", Year: 2020, GiniPreTax: 0.62, GiniPostTax: 0.48, Population: 6e6, Continent: "Europe"},
		// Incomplete and off-year rows that Build must exclude.
		{Entity: "Erewhon", Code: "ERE", Year: 2020, GiniPreTax: 0.41, GiniPostTax: nan, Continent: "Asia"},
		{Entity: "Ruritania", Code: "RUR", Year: 2020, GiniPreTax: 0.44, GiniPostTax: 0.33, Continent: ""},
		{Entity: "Atlantis", Code: "ATL", Year: 2019, GiniPreTax: 0.51, GiniPostTax: 0.29, Continent: "Oceania"},
	}}
}

func TestBuild(t *testing.T) {
	s := Build(snapshotTable(), 2020)

	require.Equal(t, 2020, s.Year)
	require.Len(t, s.Countries, 3)

	t.Run("ordered by pre-tax Gini descending", func(t *testing.T) {
		require.Equal(t, "Syldavia", s.Countries[0].Entity)
		require.Equal(t, "Atlantis", s.Countries[1].Entity)
		require.Equal(t, "Borduria", s.Countries[2].Entity)
	})

	t.Run("redistribution columns", func(t *testing.T) {
		atlantis := s.Countries[1]
		require.InDelta(t, 0.20, atlantis.Reduction, 1e-12)
		require.InDelta(t, 40.0, atlantis.ReductionPct, 1e-9)
	})
}

func TestTop(t *testing.T) {
	s := Build(snapshotTable(), 2020)

	top := s.Top(2)
	require.Len(t, top, 2)
	require.Equal(t, "Syldavia", top[0].Entity)

	require.Len(t, s.Top(0), 3)
	require.Len(t, s.Top(99), 3)
}

func TestContinents(t *testing.T) {
	s := Build(snapshotTable(), 2020)
	require.Equal(t, []string{"Europe", "Oceania"}, s.Continents())
}

func TestByContinent(t *testing.T) {
	s := Build(snapshotTable(), 2020)
	summaries := s.ByContinent()

	require.Len(t, summaries, 2)

	europe := summaries[0]
	require.Equal(t, "Europe", europe.Continent)
	require.Equal(t, 2, europe.Countries)
	require.InDelta(t, 0.54, europe.MeanPreTax, 1e-12)
	require.InDelta(t, 0.395, europe.MeanPostTax, 1e-12)
	require.InDelta(t, 0.145, europe.MeanReduction, 1e-12)

	oceania := summaries[1]
	require.Equal(t, 1, oceania.Countries)
	require.InDelta(t, 0.50, oceania.MeanPreTax, 1e-12)
}

func TestWriteXLSX(t *testing.T) {
	s := Build(snapshotTable(), 2020)
	path := filepath.Join(t.TempDir(), "gini_2020.xlsx")

	require.NoError(t, WriteXLSX(s, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
