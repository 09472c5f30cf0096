package engine

import (
	"strings"
	"unicode"
)

// Chart styles the renderer understands.
const (
	StyleBar     = "bar"
	StyleLine    = "line"
	StyleArea    = "area"
	StyleScatter = "scatter"
)

// CatalogEntry maps an indicator id to its display label and preferred
// chart style. Fixed lookup, never computed.
type CatalogEntry struct {
	Label string
	Style string
}

var catalog = map[string]CatalogEntry{
	"gdp_current_usd":           {"GDP (current USD)", StyleLine},
	"gdp_per_capita":            {"GDP per capita", StyleLine},
	"gdp_growth_percent":        {"GDP growth (%)", StyleBar},
	"inflation_percent":         {"Inflation (%)", StyleBar},
	"unemployment_percent":      {"Unemployment (%)", StyleBar},
	"population_total":          {"Total population", StyleArea},
	"imports_usd":               {"Imports (USD)", StyleLine},
	"exports_usd":               {"Exports (USD)", StyleLine},
	"exports_pct_gdp":           {"Exports (% of GDP)", StyleScatter},
	"imports_pct_gdp":           {"Imports (% of GDP)", StyleScatter},
	"current_account_pct_gdp":   {"Current account (% of GDP)", StyleLine},
	"capital_formation_pct_gdp": {"Capital formation (% of GDP)", StyleLine},
	"govt_expenditure_pct_gdp":  {"Government expenditure (% of GDP)", StyleLine},
}

// cardIndicators are the headline metrics, in display priority order.
var cardIndicators = []string{
	"gdp_current_usd",
	"gdp_per_capita",
	"gdp_growth_percent",
	"inflation_percent",
	"unemployment_percent",
	"population_total",
	"imports_usd",
	"exports_usd",
}

// Lookup returns the catalog entry for an indicator id. Unknown ids get
// a generated label (underscores to spaces, first letter upper-cased)
// and default to a line chart.
func Lookup(id string) CatalogEntry {
	if e, ok := catalog[id]; ok {
		return e
	}
	label := strings.ReplaceAll(id, "_", " ")
	if label != "" {
		r := []rune(label)
		r[0] = unicode.ToUpper(r[0])
		label = string(r)
	}
	return CatalogEntry{Label: label, Style: StyleLine}
}

// CardIndicators returns the fixed card priority order.
func CardIndicators() []string {
	out := make([]string, len(cardIndicators))
	copy(out, cardIndicators)
	return out
}

// OrderIndicators orders the ids present in the data: card indicators
// first in their priority order, then everything else in encounter
// order. Duplicates collapse to the first occurrence.
func OrderIndicators(present []string) []string {
	seen := make(map[string]bool, len(present))
	for _, id := range present {
		seen[id] = true
	}

	var out []string
	used := make(map[string]bool, len(present))
	for _, id := range cardIndicators {
		if seen[id] && !used[id] {
			out = append(out, id)
			used[id] = true
		}
	}
	for _, id := range present {
		if !used[id] {
			out = append(out, id)
			used[id] = true
		}
	}
	return out
}
