package handler

import (
	"net/http"

	"travelplanner/internal/metrics"
	"travelplanner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService    *service.AuthService
	SummaryService *service.SummaryService
	TripService    *service.TripService
	ExploreService *service.ExploreService

	log     *zap.Logger
	metrics *metrics.Metrics
	devMode bool
}

// NewHandler создает новый Handler с внедрением зависимостей.
// В режиме development тексты внутренних ошибок попадают в ответы API.
func NewHandler(as *service.AuthService, ss *service.SummaryService, ts *service.TripService,
	es *service.ExploreService, log *zap.Logger, m *metrics.Metrics, devMode bool) *Handler {
	return &Handler{
		AuthService:    as,
		SummaryService: ss,
		TripService:    ts,
		ExploreService: es,
		log:            log,
		metrics:        m,
		devMode:        devMode,
	}
}

// internalError логирует необработанную ошибку и возвращает 500.
// Текст ошибки скрывается вне режима development.
func (h *Handler) internalError(c *gin.Context, handlerName string, err error) {
	h.log.Error("handler_error", zap.String("handler", handlerName), zap.Error(err))
	h.metrics.ErrorCount.WithLabelValues(handlerName, "internal").Inc()

	resp := gin.H{"error": "Internal server error"}
	if h.devMode {
		resp["message"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
