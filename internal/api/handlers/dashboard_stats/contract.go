package dashboard_stats

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/stats/models"
)

type StatsService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
