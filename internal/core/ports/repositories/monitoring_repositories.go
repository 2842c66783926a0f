package repositories

import (
	"context"

	"github.com/SscSPs/user_account_service/internal/core/domain"
)

// MonitoringRepository persists the aggregates produced by the route monitoring
// middleware. Writes are best effort; callers log failures and move on.
type MonitoringRepository interface {
	// UpsertRouteStat inserts or updates the per-route aggregate row.
	UpsertRouteStat(ctx context.Context, stat domain.RouteStat) error

	// InsertRouteAlert records a high-traffic alert for the route.
	InsertRouteAlert(ctx context.Context, routePath string, requestCount int64) error
}
