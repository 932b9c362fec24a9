package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pinger is satisfied by *pgxpool.Pool and by a small redis adapter.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	checks map[string]Pinger
	logger *zap.Logger
}

func NewHealthController(checks map[string]Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{checks: checks, logger: logger}
}

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health pings every dependency concurrently and reports 503 if any fails.
func (ctrl *HealthController) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]string, len(ctrl.checks))
	healthy := true

	g, gctx := errgroup.WithContext(ctx)
	for name, pinger := range ctrl.checks {
		name, pinger := name, pinger
		g.Go(func() error {
			status := "ok"
			if err := pinger.Ping(gctx); err != nil {
				ctrl.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
				status = "down"
			}
			mu.Lock()
			defer mu.Unlock()
			results[name] = status
			if status != "ok" {
				healthy = false
			}
			return nil
		})
	}
	_ = g.Wait()

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, healthBody{Status: "degraded", Checks: results})
	}
	return c.JSON(http.StatusOK, healthBody{Status: "ok", Checks: results})
}
