package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("go.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var memoryGauge, _ = meter.Int64Gauge("allocated_mb")
var liveObjectsGauge, _ = meter.Int64Gauge("live_objects")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

// InstrumentPerfStats samples process cpu, memory and goroutine gauges
// every 30 seconds until ctx is cancelled.
func InstrumentPerfStats(ctx context.Context) {
	go perfStatsLoop(ctx, time.Second*30, time.Minute)
}

func perfStatsLoop(ctx context.Context, tick time.Duration, cpuWindow time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := recordPerfStats(ctx, cpuWindow)
			if err != nil {
				slog.Warn("failed to read cpu usage", "err", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// recordPerfStats takes one sample. A zero cpuWindow reports cpu usage
// since the previous sample instead of blocking for the window.
func recordPerfStats(ctx context.Context, cpuWindow time.Duration) error {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	memoryGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
	liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
	goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))

	cpuUsage, err := cpu.Percent(cpuWindow, false)
	if err != nil {
		return err
	}
	if len(cpuUsage) > 0 {
		cpuGauge.Record(ctx, cpuUsage[0])
	}
	return nil
}
