// Package restcountries is a typed client for the REST Countries v3.1
// service. Every field the dashboard touches is explicit here; absent
// fields stay zero-valued instead of being probed dynamically.
package restcountries

// Country is one country document as returned by the service.
type Country struct {
	Name        Name                `json:"name"`
	Region      string              `json:"region,omitempty"`
	Subregion   string              `json:"subregion,omitempty"`
	Continents  []string            `json:"continents,omitempty"`
	Area        *float64            `json:"area,omitempty"`
	Population  *int64              `json:"population,omitempty"`
	Flags       Image               `json:"flags,omitempty"`
	CoatOfArms  Image               `json:"coatOfArms,omitempty"`
	Capital     []string            `json:"capital,omitempty"`
	CapitalInfo CapitalInfo         `json:"capitalInfo,omitempty"`
	Currencies  map[string]Currency `json:"currencies,omitempty"`
	Languages   map[string]string   `json:"languages,omitempty"`
	Timezones   []string            `json:"timezones,omitempty"`
	Borders     []string            `json:"borders,omitempty"`
	TLD         []string            `json:"tld,omitempty"`
	FIFA        string              `json:"fifa,omitempty"`
	Gini        map[string]float64  `json:"gini,omitempty"`
	Independent *bool               `json:"independent,omitempty"`
	UNMember    bool                `json:"unMember,omitempty"`
	StartOfWeek string              `json:"startOfWeek,omitempty"`
}

type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type Image struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// CapitalInfo carries the capital coordinates as [lat, lng].
type CapitalInfo struct {
	LatLng []float64 `json:"latlng,omitempty"`
}

// CapitalCoords returns the capital coordinates when the document has a
// usable pair.
func (c *Country) CapitalCoords() (lat, lng float64, ok bool) {
	if len(c.CapitalInfo.LatLng) != 2 {
		return 0, 0, false
	}
	return c.CapitalInfo.LatLng[0], c.CapitalInfo.LatLng[1], true
}
