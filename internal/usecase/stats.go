package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

const chartDateLayout = "Jan 2"

// Summary is the aggregate view of a user's links.
type Summary struct {
	TotalLinks    int
	TotalClicks   int64
	AverageClicks float64
	Series        []entity.ChartPoint
}

// AverageLabel renders the average clicks per link with one decimal.
func (s Summary) AverageLabel() string {
	return strconv.FormatFloat(s.AverageClicks, 'f', 1, 64)
}

// Compute derives the summary counters and the chronological click series.
// The input is not modified. Dates are rendered in loc, or UTC when loc is nil.
func Compute(links []entity.Link, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}

	summary := Summary{
		TotalLinks: len(links),
		Series:     make([]entity.ChartPoint, 0, len(links)),
	}

	for _, l := range links {
		summary.TotalClicks += l.Clicks
	}

	if summary.TotalLinks > 0 {
		summary.AverageClicks = float64(summary.TotalClicks) / float64(summary.TotalLinks)
	}

	sorted := make([]entity.Link, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	for _, l := range sorted {
		summary.Series = append(summary.Series, entity.ChartPoint{
			Date:   l.CreatedAt.In(loc).Format(chartDateLayout),
			Clicks: l.Clicks,
		})
	}

	return summary
}

// Dashboard recomputes the summary from the shared collection on every read.
type Dashboard struct {
	store linkStore
	loc   *time.Location
}

func NewDashboard(store linkStore, loc *time.Location) *Dashboard {
	return &Dashboard{
		store: store,
		loc:   loc,
	}
}

func (d *Dashboard) Summary(ctx context.Context, username string) (*Summary, error) {
	const op = "usecase.Dashboard.Summary"

	links, err := d.store.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list links: %w", op, err)
	}

	summary := Compute(links, d.loc)
	return &summary, nil
}
