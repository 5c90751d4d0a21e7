package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/gamelog/external/apisports"
	"github.com/riskibarqy/gamelog/external/relayclient"
	"github.com/riskibarqy/gamelog/internal/config"
	"github.com/riskibarqy/gamelog/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/gamelog/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/gamelog/internal/platform/id"
	"github.com/riskibarqy/gamelog/internal/platform/logging"
	"github.com/riskibarqy/gamelog/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	data := memory.SeedDataset(time.Now())
	gameRepo := memory.NewGameRepository(data.Games)
	ids := idgen.NewUUIDGenerator()

	catalogSvc := usecase.NewCatalogService(
		gameRepo,
		memory.NewReviewRepository(data.Reviews),
		memory.NewLeagueRepository(data.Leagues),
		memory.NewUserRepository(data.Users),
		ids,
		logger.Named("catalog"),
	)
	watchlistSvc := usecase.NewWatchlistService(
		memory.NewWatchlistRepository(data.Watchlists),
		gameRepo,
		ids,
		logger.Named("watchlist"),
	)

	relay := newRelay(cfg, logger)
	sportsDataSvc := usecase.NewSportsDataService(relay, logger.Named("sportsdata"))

	handler := httpapi.NewHandler(relay, catalogSvc, sportsDataSvc, watchlistSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		DefaultUserID:      cfg.DemoUserID,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// newRelay serves sports data from a deployed relay when one is configured,
// otherwise the provider is called in process with the key from the environment.
func newRelay(cfg config.Config, logger *logging.Logger) usecase.Relay {
	if cfg.UseRemoteRelay() {
		logger.Info("sports data via remote relay", "url", cfg.RelayRemoteURL)
		return relayclient.NewClient(relayclient.ClientConfig{
			URL:     cfg.RelayRemoteURL,
			APIKey:  cfg.RelayRemoteAPIKey,
			Timeout: cfg.RelayRemoteTimeout,
			Logger:  logger.Named("relayclient"),
		})
	}

	client := apisports.NewClient(apisports.ClientConfig{
		FootballBaseURL:   cfg.APISportsFootballBaseURL,
		BasketballBaseURL: cfg.APISportsBasketballBaseURL,
		Timeout:           cfg.UpstreamTimeout,
		Logger:            logger.Named("apisports"),
	})
	return usecase.NewRelayService(client, config.EnvCredential{}, logger.Named("relay"))
}
