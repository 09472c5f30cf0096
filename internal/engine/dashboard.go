package engine

import (
	"math"
	"sort"
	"strings"

	"worldstats/internal/models"
)

// capitalLengthBuckets bins countries by the length of their capital
// name. Fixed bucket order for the bar chart.
var capitalLengthBuckets = []struct {
	label string
	max   int
}{
	{"0-5", 5},
	{"6-10", 10},
	{"11-15", 15},
	{"16-20", 20},
	{"20+", math.MaxInt},
}

// Dashboard computes every world-overview aggregate in a single pass
// over the country set, then sorts and trims the top-N lists.
func (d *Dataset) Dashboard() *models.Dashboard {
	out := &models.Dashboard{}

	subregionCounts := make(map[string]int)
	regionCounts := make(map[string]int)
	regionLang := make(map[string]float64)
	bucketCounts := make(map[string]int)
	regionTotal := 0

	for _, c := range d.Countries {
		if c.ISO3 != "" && c.Population != nil {
			out.PopulationByCountry = append(out.PopulationByCountry, models.CodeValue{
				Code: c.ISO3, Name: c.Name, Value: *c.Population,
			})
		}
		if c.Subregion != "" {
			subregionCounts[c.Subregion]++
		}
		if c.Region != "" {
			regionCounts[c.Region]++
			regionLang[c.Region] += float64(c.LanguageCount)
			regionTotal++
		}
		bucketCounts[capitalBucket(c.Capitals)]++
		if c.Area != nil && c.Population != nil && *c.Population > 0 {
			out.AreaPopulation = append(out.AreaPopulation, models.AreaPopulationPoint{
				Code: c.ISO3, Name: c.Name, Region: c.Region,
				Area: *c.Area, Population: *c.Population,
			})
		}
	}

	// Top Subregions
	out.TopSubregions = sortedCounts(subregionCounts)
	if len(out.TopSubregions) > 10 {
		out.TopSubregions = out.TopSubregions[:10]
	}

	// Region counts + shares
	out.RegionCounts = sortedCounts(regionCounts)
	for i := range out.RegionCounts {
		if regionTotal > 0 {
			out.RegionCounts[i].Share = float64(out.RegionCounts[i].Count) / float64(regionTotal)
		}
	}

	// Top languages (if the store carried a language_count column)
	langs := make([]models.NameValue, 0, len(d.Countries))
	for _, c := range d.Countries {
		if c.LanguageCount > 0 {
			langs = append(langs, models.NameValue{Name: c.Name, Value: float64(c.LanguageCount)})
		}
	}
	sort.SliceStable(langs, func(i, j int) bool { return langs[i].Value > langs[j].Value })
	if len(langs) > 15 {
		langs = langs[:15]
	}
	out.TopLanguages = langs

	// Top population
	top := make([]models.NameValue, 0, len(out.PopulationByCountry))
	for _, cv := range out.PopulationByCountry {
		top = append(top, models.NameValue{Name: cv.Name, Value: cv.Value})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Value > top[j].Value })
	if len(top) > 20 {
		top = top[:20]
	}
	out.TopPopulation = top

	// Average language count per region, one decimal
	for _, rc := range out.RegionCounts {
		avg := regionLang[rc.Name] / float64(rc.Count)
		out.AvgLanguagesByRegion = append(out.AvgLanguagesByRegion, models.NameValue{
			Name: rc.Name, Value: math.Round(avg*10) / 10,
		})
	}

	// Capital-length buckets in fixed order
	for _, b := range capitalLengthBuckets {
		out.CapitalLengthBuckets = append(out.CapitalLengthBuckets, models.NameCount{
			Name: b.label, Count: bucketCounts[b.label],
		})
	}

	return out
}

func capitalBucket(capitals []string) string {
	n := len(strings.Join(capitals, ", "))
	for _, b := range capitalLengthBuckets {
		if n <= b.max {
			return b.label
		}
	}
	return capitalLengthBuckets[len(capitalLengthBuckets)-1].label
}

func sortedCounts(m map[string]int) []models.NameCount {
	out := make([]models.NameCount, 0, len(m))
	for name, n := range m {
		out = append(out, models.NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
