// Package charts renders job artifacts as PNG images.
package charts

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/spacesedan/botscope/internal/models"
)

// RenderUserRankChart draws a bar chart of ranked users and writes it to
// path.
func RenderUserRankChart(title string, ranks []models.UserRank, path string) error {
	if len(ranks) == 0 {
		return fmt.Errorf("[Charts] no rows to chart for %q", title)
	}

	bars := make([]chart.Value, 0, len(ranks))
	for _, rank := range ranks {
		bars = append(bars, chart.Value{
			Value: float64(rank.Count),
			Label: rank.ScreenName,
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 48,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Charts] failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("[Charts] failed to render %s: %w", path, err)
	}
	return nil
}
