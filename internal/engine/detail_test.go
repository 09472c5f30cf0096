package engine

import "testing"

func TestCards(t *testing.T) {
	d := testDataset()
	c, _ := d.ByISO3("C00")
	cards := d.Cards(c)

	if len(cards) != len(CardIndicators()) {
		t.Fatalf("expected %d cards, got %d", len(CardIndicators()), len(cards))
	}
	gdp := cards[0]
	if gdp.Indicator != "gdp_current_usd" || gdp.Value != "110" || gdp.Year != 2021 {
		t.Errorf("GDP card wrong: %+v", gdp)
	}
	// Indicators with no data flag Missing instead of faking a zero.
	for _, card := range cards[1:] {
		if !card.Missing || card.Value != AbsentCell {
			t.Errorf("card %s must be absent: %+v", card.Indicator, card)
		}
	}
}

func TestSeriesForStylesAndOrder(t *testing.T) {
	d := testDataset()
	c, _ := d.ByISO3("C00")
	series := d.SeriesFor(c)

	if len(series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(series))
	}
	s := series[0]
	if s.Label != "GDP (current USD)" || s.Style != StyleLine {
		t.Errorf("series must carry catalog label and style: %+v", s)
	}
	if len(s.Points) != 2 {
		t.Errorf("absent year must not appear in the series, got %d points", len(s.Points))
	}
}
