package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/user_account_service/internal/core/domain"
	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMonitoringRepository struct {
	BaseRepository
}

func newPgxMonitoringRepository(pool *pgxpool.Pool) portsrepo.MonitoringRepository {
	return &PgxMonitoringRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MonitoringRepository = (*PgxMonitoringRepository)(nil)

func (r *PgxMonitoringRepository) UpsertRouteStat(ctx context.Context, stat domain.RouteStat) error {
	_, err := r.Pool.Exec(ctx, `
        INSERT INTO route_statistics (route_path, request_count, average_latency_ms, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (route_path) DO UPDATE SET
            request_count = EXCLUDED.request_count,
            average_latency_ms = EXCLUDED.average_latency_ms,
            updated_at = EXCLUDED.updated_at;
    `, stat.RoutePath, stat.RequestCount, stat.AverageLatencyMS, stat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert route statistics for %s: %w", stat.RoutePath, err)
	}
	return nil
}

func (r *PgxMonitoringRepository) InsertRouteAlert(ctx context.Context, routePath string, requestCount int64) error {
	_, err := r.Pool.Exec(ctx, `
        INSERT INTO route_alerts (id, route_path, request_count, created_at)
        VALUES ($1, $2, $3, NOW());
    `, uuid.NewString(), routePath, requestCount)
	if err != nil {
		return fmt.Errorf("failed to insert route alert for %s: %w", routePath, err)
	}
	return nil
}
