package services

import (
	"context"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/persistence"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type storeHealthStatus struct {
	Connected      bool      `json:"connected"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

type HealthService struct {
	logger  *gecho.Logger
	gateway persistence.Gateway
}

func NewHealthService(logger *gecho.Logger, gateway persistence.Gateway) *HealthService {
	return &HealthService{
		logger:  logger,
		gateway: gateway,
	}
}

// GetServerHealthStatus reports uptime and memory statistics.
func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	total := mem.Sys / 1024 / 1024
	used := mem.Alloc / 1024 / 1024
	free := total - used

	var usedPercent uint64
	if total > 0 {
		usedPercent = used * 100 / total
	}

	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats: &RamStats{
			TotalMB:     total,
			UsedMB:      used,
			FreeMB:      free,
			UsedPercent: usedPercent,
		},
	}
}

// GetStoreHealthStatus pings the persistence gateway and reports reachability.
func (hs *HealthService) GetStoreHealthStatus(ctx context.Context) (storeHealthStatus, error) {
	start := time.Now()
	err := hs.gateway.Ping(ctx)
	status := storeHealthStatus{
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		hs.logger.Warn("Store health check failed", gecho.Field("error", err))
		return status, err
	}
	return status, nil
}
