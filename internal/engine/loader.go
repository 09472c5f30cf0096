package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"worldstats/internal/models"
	"worldstats/internal/store"
)

// Dataset is everything loaded from the local store, immutable for the
// life of the process.
type Dataset struct {
	Countries    []models.Country // sorted by common name
	Observations *ObservationStore

	byISO3 map[string]int
}

// Load reads both tables and builds the in-memory dataset. A missing or
// empty table degrades to an empty set; only Open-level store failure is
// fatal, and that happens before we get here.
func Load(ctx context.Context, st *store.Store, log *zap.Logger) *Dataset {
	start := time.Now()

	rows, err := st.Countries(ctx)
	if err != nil {
		log.Warn("countries table unavailable", zap.Error(err))
	}
	obs, err := st.Indicators(ctx)
	if err != nil {
		log.Warn("indicators table unavailable", zap.Error(err))
	}

	d := Build(rows, obs)
	log.Info("dataset loaded",
		zap.Int("countries", len(d.Countries)),
		zap.Int("observations", d.Observations.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return d
}

// Build assembles a Dataset from raw rows. Split from Load so tests can
// feed rows directly.
func Build(rows []store.CountryRow, obs []store.IndicatorRow) *Dataset {
	d := &Dataset{
		Observations: NewObservationStore(),
		byISO3:       make(map[string]int),
	}

	for _, r := range rows {
		c := models.Country{
			Name:      r.Name.String,
			ISO3:      strings.ToUpper(r.ISO3.String),
			ISO2:      strings.ToUpper(r.ISO2.String),
			Region:    r.Region.String,
			Subregion: r.Subregion.String,
			Capitals:  parseCapitals(r.Capital),
		}
		if r.Population.Valid {
			p := r.Population.Float64
			c.Population = &p
		}
		// Zero area means unknown, and must not turn density into
		// an Inf artifact.
		if r.Area.Valid && r.Area.Float64 > 0 {
			a := r.Area.Float64
			c.Area = &a
			if c.Population != nil {
				dens := *c.Population / a
				c.Density = &dens
			}
		}
		if r.LanguageCount.Valid {
			c.LanguageCount = int(r.LanguageCount.Int64)
		}
		d.Countries = append(d.Countries, c)
	}

	sort.Slice(d.Countries, func(i, j int) bool {
		return d.Countries[i].Name < d.Countries[j].Name
	})
	for i, c := range d.Countries {
		if c.ISO3 != "" {
			d.byISO3[c.ISO3] = i
		}
	}

	// Orphaned observations load too; they are unreachable through the
	// country index, so they simply never display.
	for _, o := range obs {
		var v *float64
		if o.Value.Valid {
			val := o.Value.Float64
			v = &val
		}
		d.Observations.Append(strings.ToUpper(o.CountryCode), o.Indicator, o.Year, v)
	}
	return d
}

// ByISO3 looks a country up by its three-letter code.
func (d *Dataset) ByISO3(code string) (models.Country, bool) {
	i, ok := d.byISO3[strings.ToUpper(code)]
	if !ok {
		return models.Country{}, false
	}
	return d.Countries[i], true
}

// The capital column is either a JSON array (list-valued countries like
// South Africa) or a plain comma-joined string, depending on which
// exporter revision wrote the store.
func parseCapitals(col sql.NullString) []string {
	if !col.Valid {
		return nil
	}
	raw := strings.TrimSpace(col.String)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return list
		}
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
