package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultCollectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "restbucks_system_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "restbucks_system_memory_usage_bytes",
			Help: "Host memory in use",
		},
	)

	HeapAllocBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "restbucks_heap_alloc_bytes",
			Help: "Go heap bytes allocated by the service",
		},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "restbucks_goroutines",
			Help: "Goroutines alive, preparation workers and pollers included",
		},
	)
)

// StartSystemMetricsCollector samples host and runtime gauges every interval until ctx is
// done.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collect(ctx)
			}
		}
	}()
}

func collect(ctx context.Context) {
	if percent, err := cpu.PercentWithContext(ctx, time.Second, false); err == nil && len(percent) > 0 {
		SystemCPUUsage.Set(percent[0])
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vm.Used))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	HeapAllocBytes.Set(float64(stats.HeapAlloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))
}
