package postgresql

import (
	"context"
	"fmt"
	"time"
)

// HealthCheck represents database health information
type HealthCheck struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`
	ActiveConns  int32         `json:"active_connections"`
	IdleConns    int32         `json:"idle_connections"`
	Error        string        `json:"error,omitempty"`
}

// CheckHealth pings the database and reports pool statistics.
func (c *Client) CheckHealth(ctx context.Context) *HealthCheck {
	start := time.Now()
	health := &HealthCheck{Status: "healthy"}

	stats := c.pool.Stat()
	health.ActiveConns = stats.AcquiredConns()
	health.IdleConns = stats.IdleConns()

	var one int
	if err := c.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		health.Status = "unhealthy"
		health.Error = fmt.Sprintf("query failed: %v", err)
	}

	health.ResponseTime = time.Since(start)
	return health
}
