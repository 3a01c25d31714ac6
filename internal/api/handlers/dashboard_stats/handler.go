package dashboard_stats

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /dashboard-stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboardStats(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard-stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard-stats - Collected stats: daily=%d, weekly=%d, monthly=%d",
		stats.DailyBookings, stats.WeeklyBookings, stats.MonthlyBookings)
	handlers.RespondJSON(w, http.StatusOK, FromServiceStats(stats))
}
