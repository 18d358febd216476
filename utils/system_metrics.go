package utils

import (
	"context"

	"taskpulse/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type HostStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// GetHostStats samples CPU usage since the previous call and current memory
// usage. Failures are logged and reported as zero.
func GetHostStats(ctx context.Context) HostStats {
	var stats HostStats

	percentage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		logger.Warn("error getting CPU usage", "error", err)
	} else if len(percentage) > 0 {
		stats.CPUPercent = percentage[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		logger.Warn("error getting memory usage", "error", err)
	} else {
		stats.MemoryPercent = vm.UsedPercent
	}
	return stats
}
