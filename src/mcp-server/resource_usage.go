// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// serverStart anchors the uptime reported by the resource usage tool.
var serverStart = time.Now()

// ResourceUsageData is a point-in-time snapshot of the process resource
// statistics. DetailedMemory is only filled when the detailed breakdown
// was requested.
type ResourceUsageData struct {
	Timestamp      string         `json:"timestamp"`
	MemoryUsage    map[string]any `json:"memory_usage"`
	GCStats        map[string]any `json:"gc_stats"`
	SystemInfo     map[string]any `json:"system_info"`
	DetailedMemory map[string]any `json:"detailed_memory,omitempty"`
}

// CollectResourceUsage snapshots the runtime memory, GC, and system
// statistics for this process.
func CollectResourceUsage(detailed bool) *ResourceUsageData {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	mb := func(bytes uint64) float64 { return float64(bytes) / (1024 * 1024) }

	data := &ResourceUsageData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MemoryUsage: map[string]any{
			"heap_alloc_mb":    mb(memStats.HeapAlloc),
			"heap_sys_mb":      mb(memStats.HeapSys),
			"heap_idle_mb":     mb(memStats.HeapIdle),
			"heap_inuse_mb":    mb(memStats.HeapInuse),
			"heap_released_mb": mb(memStats.HeapReleased),
			"heap_objects":     memStats.HeapObjects,
			"stack_inuse_mb":   mb(memStats.StackInuse),
			"stack_sys_mb":     mb(memStats.StackSys),
			"gc_cpu_fraction":  memStats.GCCPUFraction,
		},
		GCStats: map[string]any{
			"num_gc":          memStats.NumGC,
			"num_forced_gc":   memStats.NumForcedGC,
			"gc_cpu_fraction": memStats.GCCPUFraction,
			"enable_gc":       memStats.EnableGC,
			"debug_gc":        memStats.DebugGC,
		},
		SystemInfo: map[string]any{
			"go_version":    runtime.Version(),
			"go_os":         runtime.GOOS,
			"go_arch":       runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
			"uptime":        time.Since(serverStart).Round(time.Second).String(),
		},
	}

	if detailed {
		data.DetailedMemory = map[string]any{
			"alloc_mb":          mb(memStats.Alloc),
			"total_alloc_mb":    mb(memStats.TotalAlloc),
			"sys_mb":            mb(memStats.Sys),
			"lookups":           memStats.Lookups,
			"mallocs":           memStats.Mallocs,
			"frees":             memStats.Frees,
			"heap_live_objects": memStats.HeapObjects,
			"gc_pause_total_ms": float64(memStats.PauseTotalNs) / 1e6,
			"next_gc_mb":        mb(memStats.NextGC),
		}
	}

	return data
}

// FormatResourceUsageAsJSON renders the snapshot as indented JSON.
func FormatResourceUsageAsJSON(data *ResourceUsageData) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resource usage: %w", err)
	}

	return string(jsonData), nil
}

// metricRow maps a display label to its key in one of the snapshot maps.
type metricRow struct {
	label string
	key   string
}

// reportSections defines the markdown report layout. Sections render in
// order; a section whose source map is empty is skipped, which is how the
// detailed breakdown stays out of the plain report.
var reportSections = []struct {
	title  string
	source func(*ResourceUsageData) map[string]any
	rows   []metricRow
}{
	{
		title:  "System Information",
		source: func(d *ResourceUsageData) map[string]any { return d.SystemInfo },
		rows: []metricRow{
			{"Go Version", "go_version"},
			{"Operating System", "go_os"},
			{"Architecture", "go_arch"},
			{"CPU Count", "num_cpu"},
			{"Goroutines", "num_goroutine"},
			{"Uptime", "uptime"},
		},
	},
	{
		title:  "Memory Usage",
		source: func(d *ResourceUsageData) map[string]any { return d.MemoryUsage },
		rows: []metricRow{
			{"Heap Allocated", "heap_alloc_mb"},
			{"Heap System", "heap_sys_mb"},
			{"Heap In Use", "heap_inuse_mb"},
			{"Heap Idle", "heap_idle_mb"},
			{"Heap Released", "heap_released_mb"},
			{"Heap Objects", "heap_objects"},
			{"Stack In Use", "stack_inuse_mb"},
			{"Stack System", "stack_sys_mb"},
		},
	},
	{
		title:  "Garbage Collection",
		source: func(d *ResourceUsageData) map[string]any { return d.GCStats },
		rows: []metricRow{
			{"GC Cycles", "num_gc"},
			{"Forced GC", "num_forced_gc"},
			{"GC CPU Fraction", "gc_cpu_fraction"},
			{"GC Enabled", "enable_gc"},
			{"Debug GC", "debug_gc"},
		},
	},
	{
		title:  "Detailed Memory Statistics",
		source: func(d *ResourceUsageData) map[string]any { return d.DetailedMemory },
		rows: []metricRow{
			{"Current Alloc", "alloc_mb"},
			{"Total Alloc", "total_alloc_mb"},
			{"System Memory", "sys_mb"},
			{"Lookups", "lookups"},
			{"Mallocs", "mallocs"},
			{"Frees", "frees"},
			{"Live Objects", "heap_live_objects"},
			{"GC Pause Total", "gc_pause_total_ms"},
			{"Next GC", "next_gc_mb"},
		},
	},
}

// FormatResourceUsageAsMarkdown renders the snapshot as a markdown report
// with one table per section.
func FormatResourceUsageAsMarkdown(data *ResourceUsageData) string {
	var buf strings.Builder

	buf.WriteString("# Resource Usage Report\n\n")
	fmt.Fprintf(&buf, "**Generated:** %s\n\n", reportTimestamp(data.Timestamp))

	for _, section := range reportSections {
		stats := section.source(data)
		if len(stats) == 0 {
			continue
		}
		buf.WriteString("## " + section.title + "\n\n")
		writeMetricTable(&buf, stats, section.rows)
	}

	return buf.String()
}

// reportTimestamp converts the RFC 3339 snapshot timestamp into a
// human-readable form, falling back to the raw value if it does not parse.
func reportTimestamp(timestamp string) string {
	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return parsed.Format("January 2, 2006 at 3:04 PM MST")
}

// writeMetricTable renders the rows present in stats as a markdown table,
// preserving row declaration order.
func writeMetricTable(buf *strings.Builder, stats map[string]any, rows []metricRow) {
	var cells [][]string
	for _, row := range rows {
		if value, ok := stats[row.key]; ok {
			cells = append(cells, []string{row.label, formatMetricValue(row.key, value)})
		}
	}

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"📊 Metric", "📈 Value"})
	table.Bulk(cells)
	table.Render()

	buf.WriteString("\n")
}

// formatMetricValue renders one metric for display. The key suffix selects
// the unit: _mb values render as megabytes, _ms as milliseconds, and the
// GC CPU fraction as a percentage.
func formatMetricValue(key string, value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int, int64, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float64:
		switch {
		case key == "gc_cpu_fraction":
			return fmt.Sprintf("%.2f%%", v*100)
		case strings.HasSuffix(key, "_mb"):
			return fmt.Sprintf("%.2f MB", v)
		case strings.HasSuffix(key, "_ms"):
			return fmt.Sprintf("%.2f ms", v)
		default:
			return fmt.Sprintf("%.2f", v)
		}
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
