package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// alertRequestThreshold is the per-window request count above which a route
// alert row is recorded.
const alertRequestThreshold = 10

// statsWindow is how long a route's counters accumulate before resetting.
const statsWindow = 5 * time.Minute

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

type routeStats struct {
	requestCount int64
	totalTime    time.Duration
	windowStart  time.Time
}

// MonitoringMiddleware tracks per-route request counts and latency, persisting
// aggregates and high-traffic alerts through the monitoring repository. Writes
// are best effort and never fail the request.
func MonitoringMiddleware(monitoringRepo portsrepo.MonitoringRepository) gin.HandlerFunc {
	var mu sync.Mutex
	statsMap := make(map[string]*routeStats)

	return func(c *gin.Context) {
		routePath := c.FullPath()
		if routePath == "" || pathsToSkip[routePath] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		mu.Lock()
		stats, ok := statsMap[routePath]
		if !ok || time.Since(stats.windowStart) > statsWindow {
			stats = &routeStats{windowStart: start}
			statsMap[routePath] = stats
		}
		stats.requestCount++
		stats.totalTime += latency
		count := stats.requestCount
		avgLatency := stats.totalTime / time.Duration(stats.requestCount)
		mu.Unlock()

		logger := GetLoggerFromCtx(c.Request.Context())

		// The request context is finished once the handler returns; detach so
		// the persistence calls are not cancelled with it.
		ctx := context.WithoutCancel(c.Request.Context())

		if count > alertRequestThreshold {
			logger.Warn("High request count detected", slog.String("route", routePath), slog.Int64("count", count))
			if err := monitoringRepo.InsertRouteAlert(ctx, routePath, count); err != nil {
				logger.Error("Failed to record route alert", slog.String("error", err.Error()))
			}
		}

		stat := domain.RouteStat{
			RoutePath:        routePath,
			RequestCount:     count,
			AverageLatencyMS: float64(avgLatency) / float64(time.Millisecond),
			UpdatedAt:        time.Now(),
		}
		if err := monitoringRepo.UpsertRouteStat(ctx, stat); err != nil {
			logger.Error("Failed to record route statistics", slog.String("error", err.Error()))
		}
	}
}
