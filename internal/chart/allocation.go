// Package chart renders dashboard figures as PNG images.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"assetfolio/internal/portfolio"
)

// RenderAllocationPNG renders a donut chart of cross-category allocation
// shares. Zero-value slices are skipped. Returns raw PNG bytes.
func RenderAllocationPNG(slices []portfolio.AllocationSlice) ([]byte, error) {
	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", s.Category, s.SharePercent),
			Value: s.Value,
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no allocation data to render")
	}

	graph := chart.DonutChart{
		Title:  "Portfolio Allocation",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
