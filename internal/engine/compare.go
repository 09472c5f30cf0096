package engine

import (
	"fmt"
	"sort"
	"strings"

	"worldstats/internal/models"
	"worldstats/internal/restcountries"
)

// DefaultCompareLimit caps how many countries render side by side
// before the table stops being readable.
const DefaultCompareLimit = 8

// attribute rows appended below the indicator rows, in display order.
var attributeRows = []string{
	"Neighbouring countries",
	"Timezones",
	"Languages",
	"TLD",
	"Currency",
	"Area",
	"Continent",
	"Capital",
}

// Compare builds the wide comparison table plus the combined charts for
// the selected ISO3 codes. external maps ISO3 to the country's external
// document; missing entries degrade every dependent cell to the absent
// marker. Codes are deduplicated in selection order and truncated to
// limit with a surfaced warning.
func (d *Dataset) Compare(codes []string, limit int, external map[string]*restcountries.Country) *models.Comparison {
	if limit <= 0 {
		limit = DefaultCompareLimit
	}
	selected, truncated := d.SelectCountries(codes, limit)

	cmp := &models.Comparison{Truncated: truncated}
	for _, c := range selected {
		cmp.Codes = append(cmp.Codes, c.ISO3)
		cmp.Columns = append(cmp.Columns, c.Name)
	}
	if truncated {
		cmp.Warning = fmt.Sprintf("too many countries selected, showing the first %d", limit)
	}
	if len(selected) == 0 {
		return cmp
	}

	// Indicator rows: latest non-absent value per card indicator.
	for _, ind := range cardIndicators {
		row := models.ComparisonRow{Label: Lookup(ind).Label}
		for _, c := range selected {
			if p, ok := d.Observations.Latest(c.ISO2, ind); ok {
				row.Cells = append(row.Cells, FormatCount(p.Value))
			} else {
				row.Cells = append(row.Cells, AbsentCell)
			}
		}
		cmp.Rows = append(cmp.Rows, row)
	}

	// Static attribute rows from the external documents.
	for _, label := range attributeRows {
		row := models.ComparisonRow{Label: label}
		for _, c := range selected {
			row.Cells = append(row.Cells, attributeCell(label, c, external[c.ISO3]))
		}
		cmp.Rows = append(cmp.Rows, row)
	}

	cmp.Series = d.comparisonSeries(selected)
	cmp.GDPGrowth = d.comparisonGrowth(selected)
	return cmp
}

// SelectCountries resolves a raw selection: codes are upper-cased,
// deduplicated in order, unknown ones dropped, and the result truncated
// at limit (truncated reports whether anything was cut).
func (d *Dataset) SelectCountries(codes []string, limit int) (selected []models.Country, truncated bool) {
	if limit <= 0 {
		limit = DefaultCompareLimit
	}
	seen := make(map[string]bool)
	for _, raw := range codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		c, ok := d.ByISO3(code)
		if !ok {
			continue
		}
		if len(selected) == limit {
			truncated = true
			break
		}
		selected = append(selected, c)
	}
	return selected, truncated
}

func attributeCell(label string, c models.Country, doc *restcountries.Country) string {
	if doc == nil {
		// Area is the one attribute the local store can still answer.
		if label == "Area" && c.Area != nil {
			return FormatCount(*c.Area)
		}
		return AbsentCell
	}
	switch label {
	case "Neighbouring countries":
		return joinOrAbsent(doc.Borders)
	case "Timezones":
		return joinOrAbsent(doc.Timezones)
	case "Languages":
		names := make([]string, 0, len(doc.Languages))
		for _, v := range doc.Languages {
			names = append(names, v)
		}
		sort.Strings(names)
		return joinOrAbsent(names)
	case "TLD":
		return joinOrAbsent(doc.TLD)
	case "Currency":
		if len(doc.Currencies) == 0 {
			return AbsentCell
		}
		codes := make([]string, 0, len(doc.Currencies))
		for code := range doc.Currencies {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		cur := doc.Currencies[codes[0]]
		return fmt.Sprintf("%s — %s (%s)", codes[0], cur.Name, cur.Symbol)
	case "Area":
		if doc.Area != nil {
			return FormatCount(*doc.Area)
		}
		if c.Area != nil {
			return FormatCount(*c.Area)
		}
	case "Continent":
		return joinOrAbsent(doc.Continents)
	case "Capital":
		return joinOrAbsent(doc.Capital)
	}
	return AbsentCell
}

func joinOrAbsent(parts []string) string {
	if len(parts) == 0 {
		return AbsentCell
	}
	return strings.Join(parts, ", ")
}

// comparisonSeries merges every selected country's indicators into one
// chart per indicator, card indicators first.
func (d *Dataset) comparisonSeries(selected []models.Country) []models.ComparisonSeries {
	var encounter []string
	for _, c := range selected {
		encounter = append(encounter, d.Observations.IndicatorsFor(c.ISO2)...)
	}

	var out []models.ComparisonSeries
	for _, ind := range OrderIndicators(encounter) {
		entry := Lookup(ind)
		cs := models.ComparisonSeries{
			Indicator: ind,
			Label:     entry.Label,
			Style:     entry.Style,
		}
		for _, c := range selected {
			points := d.Observations.Series(c.ISO2, ind)
			if len(points) == 0 {
				continue
			}
			cs.Countries = append(cs.Countries, models.CountrySeries{
				Code:   c.ISO3,
				Name:   c.Name,
				Points: points,
			})
		}
		if len(cs.Countries) > 0 {
			out = append(out, cs)
		}
	}
	return out
}

func (d *Dataset) comparisonGrowth(selected []models.Country) []models.GrowthSeries {
	var out []models.GrowthSeries
	for _, c := range selected {
		if g := d.Growth(c); g != nil {
			out = append(out, *g)
		}
	}
	return out
}

// Growth builds the GDP + year-over-year percent change series for one
// country, nil when it has no GDP observations.
func (d *Dataset) Growth(c models.Country) *models.GrowthSeries {
	points := d.Observations.Series(c.ISO2, "gdp_current_usd")
	if len(points) == 0 {
		return nil
	}
	g := &models.GrowthSeries{Code: c.ISO3, Name: c.Name}
	for i, p := range points {
		g.Years = append(g.Years, p.Year)
		g.Values = append(g.Values, p.Value)
		var pct *float64
		if i > 0 && points[i-1].Value != 0 {
			v := (p.Value - points[i-1].Value) / points[i-1].Value * 100
			pct = &v
		}
		g.PctChange = append(g.PctChange, pct)
	}
	return g
}
