package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const giniCSV = `Entity,Code,Year,gini_pretax,gini_posttax,population,continent
Atlantis,ATL,2010,,,9500000,
Atlantis,ATL,2011,,,9550000,
Atlantis,ATL,2012,0.50,0.30,9600000,
Atlantis,ATL,2013,,,9650000,
Atlantis,ATL,2014,,,9700000,
Atlantis,ATL,2015,,,9750000,Oceania
Atlantis,ATL,2016,,,9800000,
Atlantis,ATL,2017,,,9850000,
Atlantis,ATL,2018,,,9900000,
Atlantis,ATL,2019,,,9950000,
Atlantis,ATL,2020,0.55,,10000000,
Borduria,BOR,2010,,,4000000,
Borduria,BOR,2011,,,4010000,
Borduria,BOR,2012,,,4020000,
Borduria,BOR,2013,,,4030000,
Borduria,BOR,2014,,,4040000,
Borduria,BOR,2015,,,4050000,Europe
Borduria,BOR,2016,,,4060000,
Borduria,BOR,2017,,,4070000,
Borduria,BOR,2018,,,4080000,
Borduria,BOR,2019,0.44,0.33,4090000,
Borduria,BOR,2020,0.46,0.31,4100000,
`

func loadFixture(t *testing.T) *Table {
	t.Helper()
	table, err := LoadReader(strings.NewReader(giniCSV), nil)
	require.NoError(t, err)
	return table
}

func TestLoadReader(t *testing.T) {
	table := loadFixture(t)
	require.Equal(t, 22, table.Len())

	first := table.Rows[0]
	require.Equal(t, "Atlantis", first.Entity)
	require.Equal(t, "ATL", first.Code)
	require.Equal(t, 2010, first.Year)
	require.True(t, math.IsNaN(first.GiniPreTax), "empty cell should load as missing")
	require.True(t, math.IsNaN(first.GiniPostTax))
	require.Equal(t, 9500000.0, first.Population)
	require.Empty(t, first.Continent)

	known := table.Rows[2]
	require.Equal(t, 2012, known.Year)
	require.Equal(t, 0.50, known.GiniPreTax)
	require.Equal(t, 0.30, known.GiniPostTax)

	require.Equal(t, "Oceania", table.Rows[5].Continent)
}

func TestLoadReaderMissingColumn(t *testing.T) {
	csv := "Entity,Year\nAtlantis,2020\n"
	_, err := LoadReader(strings.NewReader(csv), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "gini_pretax")
}

func TestLoadReaderCustomColumns(t *testing.T) {
	csv := `country,year,market,disposable
Atlantis,2020,0.5,0.3
`
	opts := &LoadOptions{
		EntityColumn:  "country",
		YearColumn:    "year",
		PreTaxColumn:  "market",
		PostTaxColumn: "disposable",
	}
	table, err := LoadReader(strings.NewReader(csv), opts)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	require.Equal(t, 0.5, table.Rows[0].GiniPreTax)
	require.True(t, math.IsNaN(table.Rows[0].Population), "absent optional column loads as missing")
}

func TestLoadReaderSkipsRowsWithoutYear(t *testing.T) {
	csv := `Entity,Year,gini_pretax,gini_posttax
Atlantis,2019,0.5,0.3
Atlantis,,0.5,0.3
,2020,0.5,0.3
`
	table, err := LoadReader(strings.NewReader(csv), nil)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	require.Equal(t, 2019, table.Rows[0].Year)
}

func TestEntities(t *testing.T) {
	table := loadFixture(t)
	require.Equal(t, []string{"Atlantis", "Borduria"}, table.Entities())
}

func TestEntitySeries(t *testing.T) {
	table := loadFixture(t)
	s := table.EntitySeries("Atlantis", func(r Row) float64 { return r.GiniPreTax })

	require.Equal(t, 11, s.Len())
	require.Equal(t, 2010, s.Years[0])
	require.Equal(t, 2020, s.Years[10])
	require.Equal(t, 0.50, s.Values[2])
	require.Equal(t, 2, s.CountPresent())
}
