package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/24108244-ux/Websites-Scraper/internal/config"
	"github.com/24108244-ux/Websites-Scraper/internal/scraper"
	"github.com/24108244-ux/Websites-Scraper/internal/server"
	"github.com/24108244-ux/Websites-Scraper/internal/store"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	serverCfg := config.DefaultServerConfig()
	scrapeCfg := config.DefaultScrapeConfig()

	st, err := store.New(serverCfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("initializing result store")
	}

	sc := scraper.NewScraperWithClient(scraper.NewClientWithConfig(scrapeCfg))

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(sc, st, serverCfg, logger)

	logger.Info().
		Str("port", serverCfg.Port).
		Str("data_dir", serverCfg.DataDir).
		Msg("starting web scraping service")

	if err := srv.Router().Run(":" + serverCfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
