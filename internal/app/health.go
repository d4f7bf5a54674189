package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/smartlocker/internal/pkg/goerror"
	"github.com/shandysiswandi/smartlocker/internal/pkg/router"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status" example:"ok"`
}

// health reports whether the database answers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse "Service is healthy"
// @Failure 503 {object} router.errorResponse "Database unavailable"
// @Router /health [get]
func (a *App) health(r *router.Request) (any, error) {
	return checkHealth(r.Context(), a.dbConn)
}

func checkHealth(ctx context.Context, db pinger) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "health check failed to ping database", "error", err)
		return nil, goerror.NewBusiness("database unavailable", goerror.CodeUnavailable)
	}

	return healthResponse{Status: "ok"}, nil
}
