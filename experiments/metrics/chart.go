package metrics

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the summaries as a stacked bar chart of wins and draws
// to an HTML page at path.
func WriteChart(path string, summaries []Summary) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Agent performance",
			Subtitle: "Wins and draws per configuration",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	labels := make([]string, 0, len(summaries))
	winsX := make([]opts.BarData, 0, len(summaries))
	winsO := make([]opts.BarData, 0, len(summaries))
	draws := make([]opts.BarData, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, s.Label)
		winsX = append(winsX, opts.BarData{Value: s.WinsX})
		winsO = append(winsO, opts.BarData{Value: s.WinsO})
		draws = append(draws, opts.BarData{Value: s.Draws})
	}

	stack := charts.WithBarChartOpts(opts.BarChart{Stack: "games"})
	bar.SetXAxis(labels).
		AddSeries("Wins for X", winsX, stack).
		AddSeries("Wins for O", winsO, stack).
		AddSeries("Draws", draws, stack)

	page := components.NewPage()
	page.AddCharts(bar)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
