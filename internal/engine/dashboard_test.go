package engine

import (
	"testing"

	"worldstats/internal/store"
)

func TestDashboardAggregates(t *testing.T) {
	rows := []store.CountryRow{
		{Name: ns("Germany"), ISO3: ns("DEU"), ISO2: ns("DE"), Region: ns("Europe"),
			Subregion: ns("Western Europe"), Capital: ns("Berlin"),
			Population: nf(83_000_000), Area: nf(357_000), LanguageCount: ni(1)},
		{Name: ns("Netherlands"), ISO3: ns("NLD"), ISO2: ns("NL"), Region: ns("Europe"),
			Subregion: ns("Western Europe"), Capital: ns("Amsterdam"),
			Population: nf(17_000_000), Area: nf(41_850), LanguageCount: ni(1)},
		{Name: ns("Japan"), ISO3: ns("JPN"), ISO2: ns("JP"), Region: ns("Asia"),
			Subregion: ns("Eastern Asia"), Capital: ns("Tokyo"),
			Population: nf(125_000_000), Area: nf(377_975), LanguageCount: ni(2)},
	}
	d := Build(rows, nil)
	dash := d.Dashboard()

	if len(dash.PopulationByCountry) != 3 {
		t.Fatalf("expected 3 choropleth entries, got %d", len(dash.PopulationByCountry))
	}
	if dash.TopSubregions[0].Name != "Western Europe" || dash.TopSubregions[0].Count != 2 {
		t.Errorf("top subregion wrong: %+v", dash.TopSubregions[0])
	}
	if dash.TopPopulation[0].Name != "Japan" {
		t.Errorf("expected Japan on top of population, got %s", dash.TopPopulation[0].Name)
	}

	// Region shares sum to 1 over countries that carry a region.
	var share float64
	for _, rc := range dash.RegionCounts {
		share += rc.Share
	}
	if share < 0.999 || share > 1.001 {
		t.Errorf("region shares must sum to 1, got %f", share)
	}

	// Europe averages 1.0 languages, Asia 2.0.
	for _, av := range dash.AvgLanguagesByRegion {
		switch av.Name {
		case "Europe":
			if av.Value != 1.0 {
				t.Errorf("Europe avg languages: %f", av.Value)
			}
		case "Asia":
			if av.Value != 2.0 {
				t.Errorf("Asia avg languages: %f", av.Value)
			}
		}
	}
}

func TestCapitalBuckets(t *testing.T) {
	cases := []struct {
		caps []string
		want string
	}{
		{nil, "0-5"},
		{[]string{"Tokyo"}, "0-5"},
		{[]string{"Amsterdam"}, "6-10"},
		{[]string{"Washington, D.C."}, "16-20"},
		{[]string{"Pretoria", "Cape Town", "Bloemfontein"}, "20+"},
	}
	for _, tc := range cases {
		if got := capitalBucket(tc.caps); got != tc.want {
			t.Errorf("capitalBucket(%v): expected %s, got %s", tc.caps, tc.want, got)
		}
	}
}

func TestDashboardBucketOrderFixed(t *testing.T) {
	d := Build(nil, nil)
	dash := d.Dashboard()
	want := []string{"0-5", "6-10", "11-15", "16-20", "20+"}
	for i, b := range dash.CapitalLengthBuckets {
		if b.Name != want[i] {
			t.Fatalf("bucket order broken at %d: %s", i, b.Name)
		}
	}
}
