package engine

import (
	"sort"

	"worldstats/internal/models"
)

// ObservationStore holds indicator observations in Struct-of-Arrays form.
// Country codes and indicator ids are dictionary encoded; absent values
// keep their row (Present=false) so year coverage stays visible.
type ObservationStore struct {
	// Data Columns (Flat Arrays)
	Values  []float64
	Present []bool
	Years   []int32

	// Dictionary Encoded IDs (0..N)
	CountryIDs   []int32
	IndicatorIDs []int32

	// Dictionaries (ID -> String), in encounter order
	CountryDict   []string
	IndicatorDict []string

	countryIdx   map[string]int32
	indicatorIdx map[string]int32
}

func NewObservationStore() *ObservationStore {
	return &ObservationStore{
		countryIdx:   make(map[string]int32),
		indicatorIdx: make(map[string]int32),
	}
}

// Append adds one observation. value nil means the source row had a
// NULL value for that year.
func (s *ObservationStore) Append(code, indicator string, year int32, value *float64) {
	cid, ok := s.countryIdx[code]
	if !ok {
		cid = int32(len(s.CountryDict))
		s.CountryDict = append(s.CountryDict, code)
		s.countryIdx[code] = cid
	}
	iid, ok := s.indicatorIdx[indicator]
	if !ok {
		iid = int32(len(s.IndicatorDict))
		s.IndicatorDict = append(s.IndicatorDict, indicator)
		s.indicatorIdx[indicator] = iid
	}

	s.CountryIDs = append(s.CountryIDs, cid)
	s.IndicatorIDs = append(s.IndicatorIDs, iid)
	s.Years = append(s.Years, year)
	if value != nil {
		s.Values = append(s.Values, *value)
		s.Present = append(s.Present, true)
	} else {
		s.Values = append(s.Values, 0)
		s.Present = append(s.Present, false)
	}
}

func (s *ObservationStore) Len() int { return len(s.Years) }

// IndicatorsFor returns the indicator ids observed for one country, in
// encounter order.
func (s *ObservationStore) IndicatorsFor(code string) []string {
	cid, ok := s.countryIdx[code]
	if !ok {
		return nil
	}
	seen := make(map[int32]bool)
	var out []string
	for i, c := range s.CountryIDs {
		if c != cid || seen[s.IndicatorIDs[i]] {
			continue
		}
		seen[s.IndicatorIDs[i]] = true
		out = append(out, s.IndicatorDict[s.IndicatorIDs[i]])
	}
	return out
}

// Series returns the non-absent observations for (country, indicator)
// sorted by year. Absent years are dropped from chart data.
func (s *ObservationStore) Series(code, indicator string) []models.Point {
	cid, okC := s.countryIdx[code]
	iid, okI := s.indicatorIdx[indicator]
	if !okC || !okI {
		return nil
	}
	var out []models.Point
	for i := range s.Years {
		if s.CountryIDs[i] != cid || s.IndicatorIDs[i] != iid || !s.Present[i] {
			continue
		}
		out = append(out, models.Point{Year: s.Years[i], Value: s.Values[i]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Latest returns the maximum-year non-absent observation, regardless of
// row order in the source. ok is false when no such observation exists.
func (s *ObservationStore) Latest(code, indicator string) (p models.Point, ok bool) {
	cid, okC := s.countryIdx[code]
	iid, okI := s.indicatorIdx[indicator]
	if !okC || !okI {
		return models.Point{}, false
	}
	for i := range s.Years {
		if s.CountryIDs[i] != cid || s.IndicatorIDs[i] != iid || !s.Present[i] {
			continue
		}
		if !ok || s.Years[i] > p.Year {
			p = models.Point{Year: s.Years[i], Value: s.Values[i]}
			ok = true
		}
	}
	return p, ok
}
