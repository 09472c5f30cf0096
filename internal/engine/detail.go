package engine

import (
	"worldstats/internal/models"
)

// Cards returns the headline metrics for one country in card priority
// order. Indicators with no usable observation are flagged Missing so
// the renderer can skip the slot instead of showing a zero.
func (d *Dataset) Cards(c models.Country) []models.Card {
	var out []models.Card
	for _, ind := range cardIndicators {
		card := models.Card{Indicator: ind, Label: Lookup(ind).Label}
		if p, ok := d.Observations.Latest(c.ISO2, ind); ok {
			card.Value = FormatCount(p.Value)
			card.Year = p.Year
		} else {
			card.Value = AbsentCell
			card.Missing = true
		}
		out = append(out, card)
	}
	return out
}

// SeriesFor returns every indicator series observed for one country,
// card indicators first, each tagged with its label and chart style.
func (d *Dataset) SeriesFor(c models.Country) []models.IndicatorSeries {
	var out []models.IndicatorSeries
	for _, ind := range OrderIndicators(d.Observations.IndicatorsFor(c.ISO2)) {
		points := d.Observations.Series(c.ISO2, ind)
		if len(points) == 0 {
			continue
		}
		entry := Lookup(ind)
		out = append(out, models.IndicatorSeries{
			Indicator: ind,
			Label:     entry.Label,
			Style:     entry.Style,
			Points:    points,
		})
	}
	return out
}
