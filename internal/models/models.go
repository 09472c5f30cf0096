package models

// Country is one row of the countries table after cleaning.
// Pointer fields are nil when the store had no usable value.
type Country struct {
	Name          string   `json:"name"`
	ISO3          string   `json:"iso3"`
	ISO2          string   `json:"iso2"`
	Region        string   `json:"region,omitempty"`
	Subregion     string   `json:"subregion,omitempty"`
	Capitals      []string `json:"capitals,omitempty"`
	Population    *float64 `json:"population,omitempty"`
	Area          *float64 `json:"area,omitempty"`
	LanguageCount int      `json:"language_count"`

	// Density is population/area, nil when area is zero or unknown.
	Density *float64 `json:"density,omitempty"`
}

// Point is one year of an indicator series.
type Point struct {
	Year  int32   `json:"year"`
	Value float64 `json:"value"`
}

// IndicatorSeries is a single indicator's time series for one country,
// tagged with the catalog label and chart style the renderer should use.
type IndicatorSeries struct {
	Indicator string  `json:"indicator"`
	Label     string  `json:"label"`
	Style     string  `json:"style"`
	Points    []Point `json:"points"`
}

// ComparisonSeries is one indicator across every selected country.
type ComparisonSeries struct {
	Indicator string          `json:"indicator"`
	Label     string          `json:"label"`
	Style     string          `json:"style"`
	Countries []CountrySeries `json:"countries"`
}

// CountrySeries is one country's slice of a comparison chart.
type CountrySeries struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// GrowthSeries is a GDP series paired with its year-over-year percent
// change, the input of the mixed bar/line chart. PctChange aligns with
// Years; the first entry is null, not a fabricated zero.
type GrowthSeries struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Years     []int32    `json:"years"`
	Values    []float64  `json:"values"`
	PctChange []*float64 `json:"pct_change"`
}

// Card is a headline metric: the latest non-absent observation of a
// card indicator, pre-formatted for display.
type Card struct {
	Indicator string `json:"indicator"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Year      int32  `json:"year,omitempty"`
	Missing   bool   `json:"missing,omitempty"`
}

// Comparison is the wide side-by-side table plus the combined charts.
type Comparison struct {
	Codes     []string           `json:"codes"`
	Columns   []string           `json:"columns"`
	Rows      []ComparisonRow    `json:"rows"`
	Truncated bool               `json:"truncated,omitempty"`
	Warning   string             `json:"warning,omitempty"`
	Series    []ComparisonSeries `json:"series"`
	GDPGrowth []GrowthSeries     `json:"gdp_growth"`
}

// ComparisonRow is one labelled row; Cells aligns with Comparison.Columns.
type ComparisonRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// NameCount is a generic (name, count) aggregate row.
type NameCount struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Share float64 `json:"share,omitempty"`
}

// NameValue is a generic (name, value) aggregate row.
type NameValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CodeValue keys a value by ISO3 code, the choropleth input shape.
type CodeValue struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AreaPopulationPoint is one country on the area-vs-population scatter.
type AreaPopulationPoint struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Region     string  `json:"region,omitempty"`
	Area       float64 `json:"area"`
	Population float64 `json:"population"`
}

// Dashboard holds every aggregate the world overview needs.
type Dashboard struct {
	PopulationByCountry  []CodeValue           `json:"population_by_country"`
	TopSubregions        []NameCount           `json:"top_subregions"`
	RegionCounts         []NameCount           `json:"region_counts"`
	TopLanguages         []NameValue           `json:"top_languages"`
	TopPopulation        []NameValue           `json:"top_population"`
	AvgLanguagesByRegion []NameValue           `json:"avg_languages_by_region"`
	CapitalLengthBuckets []NameCount           `json:"capital_length_buckets"`
	AreaPopulation       []AreaPopulationPoint `json:"area_population"`
}
