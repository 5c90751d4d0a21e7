package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/gamelog/internal/platform/logging"
)

// RelayPath keeps the path of the original serverless deployment so existing browser clients work unchanged.
const RelayPath = "/functions/v1/football-api"

type RouterConfig struct {
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
	DefaultUserID      string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	apiMux := http.NewServeMux()
	registerSystemRoutes(apiMux, handler, cfg.SwaggerEnabled)
	registerCatalogRoutes(apiMux, handler, cfg.DefaultUserID)
	registerWatchlistRoutes(apiMux, handler, cfg.DefaultUserID)
	registerLiveRoutes(apiMux, handler)

	// The relay answers every origin with its own fixed headers, so it bypasses the configured CORS policy.
	root := http.NewServeMux()
	root.Handle(RelayPath, RelayCORS(recoverRelayPanic(logger, http.HandlerFunc(handler.Relay))))
	root.Handle("/", CORS(cfg.CORSAllowedOrigins, apiMux))

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, root)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return recoverWith(logger, next, writeInternalError)
}

// recoverRelayPanic answers in the relay envelope, which relay clients parse instead of the API envelope.
func recoverRelayPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return recoverWith(logger, next, func(ctx context.Context, w http.ResponseWriter) {
		writeRelayServerError(ctx, w, http.StatusInternalServerError, relayInternalError)
	})
}

func recoverWith(logger *logging.Logger, next http.Handler, respond func(ctx context.Context, w http.ResponseWriter)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				respond(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
