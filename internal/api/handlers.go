package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"worldstats/internal/cache"
	"worldstats/internal/config"
	"worldstats/internal/engine"
	"worldstats/internal/geo"
	"worldstats/internal/models"
	"worldstats/internal/restcountries"
)

type Handler struct {
	mu   sync.RWMutex
	data *engine.Dataset
	geo  *geo.Index

	external *cache.Loader[*restcountries.Country]
	cfg      *config.Config
	log      *zap.Logger
}

func NewHandler(cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

// SetData publishes the loaded dataset; until then every handler
// answers 503 Loading.
func (h *Handler) SetData(d *engine.Dataset) {
	h.mu.Lock()
	h.data = d
	h.mu.Unlock()
}

// SetGeo publishes the boundary index. Nil is fine: geometry endpoints
// degrade to not-found.
func (h *Handler) SetGeo(ix *geo.Index) {
	h.mu.Lock()
	h.geo = ix
	h.mu.Unlock()
}

// SetExternal wires the country-information client behind the
// read-through cache, keyed by ISO3 whichever endpoint the config picks.
func (h *Handler) SetExternal(client *restcountries.Client) {
	h.external = cache.NewLoader(func(ctx context.Context, iso3 string) (*restcountries.Country, error) {
		if h.cfg.RestCountries.LookupBy == "name" {
			if d, ok := h.dataset(); ok {
				if c, ok := d.ByISO3(iso3); ok && c.Name != "" {
					return client.ByName(ctx, c.Name)
				}
			}
		}
		return client.ByCode(ctx, iso3)
	})
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/countries", h.GetCountries)
	api.GET("/countries/:code", h.GetCountryDetail)
	api.GET("/countries/:code/series", h.GetCountrySeries)
	api.GET("/compare", h.GetComparison)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/geo/:code", h.GetGeometry)
}

func (h *Handler) dataset() (*engine.Dataset, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data, h.data != nil
}

func (h *Handler) boundaries() *geo.Index {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.geo
}

func loading(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
}

// --- HANDLERS ---

func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *Handler) GetCountries(c echo.Context) error {
	d, ok := h.dataset()
	if !ok {
		return loading(c)
	}
	countries := d.Countries
	total := len(countries)
	limit, offset := getPaginationParams(c, total)

	if offset >= total {
		return c.JSON(http.StatusOK, []models.Country{})
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   countries[offset:end],
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

type countryDetail struct {
	Country   models.Country           `json:"country"`
	External  *restcountries.Country   `json:"external,omitempty"`
	Cards     []models.Card            `json:"cards"`
	Series    []models.IndicatorSeries `json:"series"`
	GDPGrowth *models.GrowthSeries     `json:"gdp_growth,omitempty"`
	Geometry  *geo.Summary             `json:"geometry,omitempty"`
}

func (h *Handler) GetCountryDetail(c echo.Context) error {
	d, ok := h.dataset()
	if !ok {
		return loading(c)
	}
	country, ok := d.ByISO3(c.Param("code"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"status": "not_found"})
	}

	resp := countryDetail{
		Country:   country,
		Cards:     d.Cards(country),
		Series:    d.SeriesFor(country),
		GDPGrowth: d.Growth(country),
		External:  h.lookupExternal(c.Request().Context(), country.ISO3),
	}
	if ix := h.boundaries(); ix != nil {
		resp.Geometry, _ = ix.Summarize(country.ISO3)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCountrySeries(c echo.Context) error {
	d, ok := h.dataset()
	if !ok {
		return loading(c)
	}
	country, ok := d.ByISO3(c.Param("code"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"status": "not_found"})
	}
	return c.JSON(http.StatusOK, d.SeriesFor(country))
}

func (h *Handler) GetComparison(c echo.Context) error {
	d, ok := h.dataset()
	if !ok {
		return loading(c)
	}

	codes := splitCodes(c.QueryParam("codes"))
	if len(codes) == 0 {
		codes = h.cfg.DefaultCountries
	}
	selected, _ := d.SelectCountries(codes, h.cfg.CompareLimit)

	// One external lookup per column; a failed or timed-out lookup
	// leaves a nil document and the table shows absent cells.
	external := make(map[string]*restcountries.Country, len(selected))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(c.Request().Context())
	for _, country := range selected {
		country := country
		g.Go(func() error {
			doc := h.lookupExternal(ctx, country.ISO3)
			mu.Lock()
			external[country.ISO3] = doc
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return c.JSON(http.StatusOK, d.Compare(codes, h.cfg.CompareLimit, external))
}

func (h *Handler) GetDashboard(c echo.Context) error {
	d, ok := h.dataset()
	if !ok {
		return loading(c)
	}
	return c.JSON(http.StatusOK, d.Dashboard())
}

type geometryResponse struct {
	Summary *geo.Summary `json:"summary"`
	Feature interface{}  `json:"feature"`
}

func (h *Handler) GetGeometry(c echo.Context) error {
	ix := h.boundaries()
	if ix == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"status": "no_boundaries"})
	}
	code := c.Param("code")
	feature, ok := ix.Feature(code)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"status": "not_found"})
	}
	summary, _ := ix.Summarize(code)
	return c.JSON(http.StatusOK, geometryResponse{Summary: summary, Feature: feature})
}

// lookupExternal returns nil on any failure; the caller renders the
// absent state for that widget only.
func (h *Handler) lookupExternal(ctx context.Context, iso3 string) *restcountries.Country {
	if h.external == nil {
		return nil
	}
	doc, err := h.external.Get(ctx, iso3)
	if err != nil {
		h.log.Warn("external country lookup failed",
			zap.String("code", iso3), zap.Error(err))
		return nil
	}
	return doc
}

func splitCodes(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
