package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

type Handler struct {
	statsService  *usecase.StatsService
	playerService *usecase.PlayerService
	reportService *usecase.ReportService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	playerService *usecase.PlayerService,
	reportService *usecase.ReportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService:  statsService,
		playerService: playerService,
		reportService: reportService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
