package engine

import (
	"reflect"
	"testing"
)

func TestLookupStyles(t *testing.T) {
	cases := map[string]string{
		"gdp_growth_percent":   StyleBar,
		"inflation_percent":    StyleBar,
		"unemployment_percent": StyleBar,
		"population_total":     StyleArea,
		"exports_pct_gdp":      StyleScatter,
		"imports_pct_gdp":      StyleScatter,
		"gdp_current_usd":      StyleLine,
		"imports_usd":          StyleLine,
	}
	for id, want := range cases {
		if got := Lookup(id).Style; got != want {
			t.Errorf("%s: expected style %s, got %s", id, want, got)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	e := Lookup("military_expenditure_pct")
	if e.Label != "Military expenditure pct" {
		t.Errorf("generated label wrong: %q", e.Label)
	}
	if e.Style != StyleLine {
		t.Errorf("unknown ids default to line, got %s", e.Style)
	}
}

func TestOrderIndicators(t *testing.T) {
	present := []string{
		"custom_metric",
		"population_total",
		"gdp_current_usd",
		"another_metric",
		"gdp_current_usd", // duplicate collapses
	}
	got := OrderIndicators(present)
	want := []string{"gdp_current_usd", "population_total", "custom_metric", "another_metric"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
