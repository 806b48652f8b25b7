package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// Status reports the state of the clinic database as seen by a health check.
type Status struct {
	Reachable bool   `json:"reachable"`
	PingMs    int64  `json:"ping_ms"`
	Error     string `json:"error,omitempty"`
	Conns     struct {
		Total    int32 `json:"total"`
		Idle     int32 `json:"idle"`
		Acquired int32 `json:"acquired"`
		Max      int32 `json:"max"`
	} `json:"conns"`
}

// Check pings the database and snapshots the pool counters.
func Check(ctx context.Context, pool *pgxpool.Pool) Status {
	var s Status

	start := time.Now()
	if err := pool.Ping(ctx); err != nil {
		s.Error = err.Error()
	} else {
		s.Reachable = true
	}
	s.PingMs = time.Since(start).Milliseconds()

	stat := pool.Stat()
	s.Conns.Total = stat.TotalConns()
	s.Conns.Idle = stat.IdleConns()
	s.Conns.Acquired = stat.AcquiredConns()
	s.Conns.Max = stat.MaxConns()
	return s
}

// HealthHandler serves the database health endpoint. An unreachable database
// answers 503 so load balancers take the instance out of rotation.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := Check(ctx, pool)
		if !status.Reachable {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":   "unavailable",
				"database": status,
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"database": status,
		})
	}
}
