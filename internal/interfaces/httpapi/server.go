package httpapi

import (
	"net/http"

	"github.com/riskibarqy/futsal-stats/internal/platform/id"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerCatalogRoutes(mux, handler)
	registerTableRoutes(mux, handler)
	registerGoalRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)

	requestIDs := id.NewRandomGenerator(8)
	return RequestTracing(RequestID(requestIDs, RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}
