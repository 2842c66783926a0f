package domain

import "time"

// RouteStat is the per-route aggregate persisted by the monitoring middleware.
type RouteStat struct {
	RoutePath        string    `json:"routePath"`
	RequestCount     int64     `json:"requestCount"`
	AverageLatencyMS float64   `json:"averageLatencyMs"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RouteAlert is recorded when a route crosses the high-traffic threshold.
type RouteAlert struct {
	ID           string    `json:"id"`
	RoutePath    string    `json:"routePath"`
	RequestCount int64     `json:"requestCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
