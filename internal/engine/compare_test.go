package engine

import (
	"fmt"
	"strings"
	"testing"

	"worldstats/internal/restcountries"
	"worldstats/internal/store"
)

func testDataset() *Dataset {
	var rows []store.CountryRow
	for i := 0; i < 12; i++ {
		rows = append(rows, store.CountryRow{
			Name: ns(fmt.Sprintf("Country %02d", i)),
			ISO3: ns(fmt.Sprintf("C%02d", i)),
			ISO2: ns(fmt.Sprintf("%02d", i)),
		})
	}
	obs := []store.IndicatorRow{
		{CountryCode: "00", Indicator: "gdp_current_usd", Year: 2020, Value: nf(100)},
		{CountryCode: "00", Indicator: "gdp_current_usd", Year: 2021, Value: nf(110)},
		{CountryCode: "00", Indicator: "gdp_current_usd", Year: 2022},
		{CountryCode: "01", Indicator: "inflation_percent", Year: 2021, Value: nf(3.1)},
	}
	return Build(rows, obs)
}

func TestCompareLatestValue(t *testing.T) {
	d := testDataset()
	cmp := d.Compare([]string{"C00"}, 8, nil)

	if len(cmp.Columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cmp.Columns))
	}
	// gdp_current_usd is the first card row; absent 2022 must not win.
	if cmp.Rows[0].Label != "GDP (current USD)" {
		t.Fatalf("unexpected first row %q", cmp.Rows[0].Label)
	}
	if cmp.Rows[0].Cells[0] != "110" {
		t.Errorf("latest GDP cell: expected 110, got %q", cmp.Rows[0].Cells[0])
	}
}

func TestCompareAbsentCells(t *testing.T) {
	d := testDataset()
	cmp := d.Compare([]string{"C01"}, 8, nil)

	// No GDP data and no external document: absent markers, no zeros.
	if cmp.Rows[0].Cells[0] != AbsentCell {
		t.Errorf("expected %q, got %q", AbsentCell, cmp.Rows[0].Cells[0])
	}
	for _, row := range cmp.Rows {
		if row.Cells[0] == "0" {
			t.Errorf("row %q rendered a zero for absent data", row.Label)
		}
	}
}

func TestCompareTruncation(t *testing.T) {
	d := testDataset()
	var codes []string
	for i := 0; i < 10; i++ {
		codes = append(codes, fmt.Sprintf("C%02d", i))
	}
	cmp := d.Compare(codes, 8, nil)

	if len(cmp.Columns) != 8 {
		t.Fatalf("expected 8 columns, got %d", len(cmp.Columns))
	}
	if !cmp.Truncated || cmp.Warning == "" {
		t.Error("truncation must be surfaced with a warning")
	}
}

func TestCompareDeduplicates(t *testing.T) {
	d := testDataset()
	cmp := d.Compare([]string{"C00", "c00", " C00 ", "C01"}, 8, nil)
	if len(cmp.Columns) != 2 {
		t.Errorf("expected 2 deduplicated columns, got %d", len(cmp.Columns))
	}
	if cmp.Truncated {
		t.Error("duplicates alone must not trip the cap")
	}
}

func TestCompareExternalAttributes(t *testing.T) {
	d := testDataset()
	area := 41_850.0
	doc := &restcountries.Country{
		Borders:    []string{"BEL", "DEU"},
		Timezones:  []string{"UTC+01:00"},
		Languages:  map[string]string{"nld": "Dutch"},
		TLD:        []string{".nl"},
		Currencies: map[string]restcountries.Currency{"EUR": {Name: "Euro", Symbol: "€"}},
		Area:       &area,
		Continents: []string{"Europe"},
		Capital:    []string{"Amsterdam"},
	}
	cmp := d.Compare([]string{"C00"}, 8, map[string]*restcountries.Country{"C00": doc})

	byLabel := make(map[string]string)
	for _, row := range cmp.Rows {
		byLabel[row.Label] = row.Cells[0]
	}
	if byLabel["Neighbouring countries"] != "BEL, DEU" {
		t.Errorf("borders cell: %q", byLabel["Neighbouring countries"])
	}
	if byLabel["Currency"] != "EUR — Euro (€)" {
		t.Errorf("currency cell: %q", byLabel["Currency"])
	}
	if byLabel["Area"] != "41,850" {
		t.Errorf("area cell not thousands-grouped: %q", byLabel["Area"])
	}
}

func TestGrowthPctChange(t *testing.T) {
	d := testDataset()
	c, _ := d.ByISO3("C00")
	g := d.Growth(c)
	if g == nil {
		t.Fatal("expected a growth series")
	}
	if len(g.Years) != 2 {
		t.Fatalf("absent year must be dropped, got %d years", len(g.Years))
	}
	if g.PctChange[0] != nil {
		t.Error("first pct entry must be null")
	}
	if g.PctChange[1] == nil || *g.PctChange[1] != 10 {
		t.Errorf("expected 10%% growth, got %v", g.PctChange[1])
	}

	c1, _ := d.ByISO3("C01")
	if d.Growth(c1) != nil {
		t.Error("no GDP data must yield nil growth series")
	}
}

func TestComparisonSeriesOrdered(t *testing.T) {
	d := testDataset()
	cmp := d.Compare([]string{"C01", "C00"}, 8, nil)

	if len(cmp.Series) != 2 {
		t.Fatalf("expected 2 combined series, got %d", len(cmp.Series))
	}
	// Card priority order, not selection order.
	if cmp.Series[0].Indicator != "gdp_current_usd" {
		t.Errorf("card indicators come first, got %s", cmp.Series[0].Indicator)
	}
	if cmp.Series[0].Style != StyleLine || cmp.Series[1].Style != StyleBar {
		t.Error("series must carry their catalog chart styles")
	}
}

func TestSelectCountriesDropsUnknown(t *testing.T) {
	d := testDataset()
	selected, truncated := d.SelectCountries([]string{"C00", "XXX", "C01"}, 8)
	if truncated {
		t.Error("unexpected truncation")
	}
	names := make([]string, 0, len(selected))
	for _, c := range selected {
		names = append(names, c.ISO3)
	}
	if strings.Join(names, ",") != "C00,C01" {
		t.Errorf("selection order broken: %v", names)
	}
}
