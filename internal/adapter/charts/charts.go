// Package charts renders progress time series as PNG line charts.
package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// RenderSeries draws one ordered sequence as a line chart, with the entry
// index on the X axis. The series must hold at least two values.
func RenderSeries(title, yLabel string, values []float64) ([]byte, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("need at least 2 points, have %d", len(values))
	}

	xs := make([]float64, len(values))
	for i := range values {
		xs[i] = float64(i + 1)
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: "Entry"},
		YAxis: chart.YAxis{Name: yLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yLabel,
				XValues: xs,
				YValues: values,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
