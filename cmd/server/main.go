package main

import (
	"context"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"worldstats/internal/api"
	"worldstats/internal/config"
	"worldstats/internal/engine"
	"worldstats/internal/geo"
	"worldstats/internal/restcountries"
	"worldstats/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("WORLDSTATS_CONFIG")
	if cfgPath == "" {
		cfgPath = "worldstats.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("bad configuration", zap.Error(err))
	}

	// The store being unreachable is the one fatal startup error;
	// everything after this degrades per widget.
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("store unavailable", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer st.Close()

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// The API goes live immediately and answers 503 until the
	// background load below publishes the dataset.
	h := api.NewHandler(cfg, logger)
	h.SetExternal(restcountries.NewClient(cfg.RestCountries.BaseURL, cfg.RestCountries.LookupTimeout()))
	h.RegisterRoutes(e)

	go func() {
		t0 := time.Now()
		h.SetData(engine.Load(context.Background(), st, logger))

		if ix, err := geo.Load(cfg.GeoJSONPath); err != nil {
			logger.Warn("boundaries unavailable, maps degrade to not-found",
				zap.String("path", cfg.GeoJSONPath), zap.Error(err))
		} else {
			h.SetGeo(ix)
			logger.Info("boundaries indexed", zap.Int("features", ix.Len()))
		}

		logger.Info("background load complete", zap.Duration("elapsed", time.Since(t0)))
	}()

	logger.Info("server ready, data loading in background", zap.String("addr", cfg.Addr))
	e.Logger.Fatal(e.Start(cfg.Addr))
}
