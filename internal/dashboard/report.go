package dashboard

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/qepting91/reddit-gifs/internal/domain"
)

// Render writes an HTML page charting a run summary.
func Render(w io.Writer, summary domain.Summary) error {
	// 1. Per-subreddit yield
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "GIFs per Subreddit"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	var subs []string
	var candidates, working []opts.BarData
	for _, s := range summary.Sources {
		subs = append(subs, s.Subreddit)
		candidates = append(candidates, opts.BarData{Value: s.Candidates})
		working = append(working, opts.BarData{Value: s.Working})
	}
	bar.SetXAxis(subs).
		AddSeries("Candidates", candidates).
		AddSeries("Working", working)

	// 2. Probe outcome
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Probe Results"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)
	pie.AddSeries("Probes", []opts.PieData{
		{Name: "OK", Value: summary.Working},
		{Name: "Bad", Value: summary.Bad},
	})

	page := components.NewPage()
	page.PageTitle = "reddit-gifs run"
	page.AddCharts(bar, pie)
	return page.Render(w)
}

// WriteReport renders the summary to an HTML file at path.
func WriteReport(path string, summary domain.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := Render(f, summary); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
