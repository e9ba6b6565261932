package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"

	mocks "github.com/vadimbarashkov/url-shortener-web/mocks/usecase"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 10, 0, 0, 0, time.UTC)
}

func TestCompute(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		summary := Compute(nil, nil)

		assert.Zero(t, summary.TotalLinks)
		assert.Zero(t, summary.TotalClicks)
		assert.Zero(t, summary.AverageClicks)
		assert.Equal(t, "0.0", summary.AverageLabel())
		assert.NotNil(t, summary.Series)
		assert.Empty(t, summary.Series)
	})

	t.Run("series is chronological", func(t *testing.T) {
		links := []entity.Link{
			{Slug: "a", CreatedAt: date(time.March, 1), Clicks: 5},
			{Slug: "b", CreatedAt: date(time.March, 3), Clicks: 10},
			{Slug: "c", CreatedAt: date(time.March, 2), Clicks: 2},
		}

		summary := Compute(links, nil)

		assert.Equal(t, 3, summary.TotalLinks)
		assert.Equal(t, int64(17), summary.TotalClicks)
		assert.InDelta(t, 5.666, summary.AverageClicks, 0.001)
		assert.Equal(t, "5.7", summary.AverageLabel())
		assert.Equal(t, []entity.ChartPoint{
			{Date: "Mar 1", Clicks: 5},
			{Date: "Mar 2", Clicks: 2},
			{Date: "Mar 3", Clicks: 10},
		}, summary.Series)

		assert.Equal(t, "b", links[1].Slug, "input must not be reordered")
	})

	t.Run("equal timestamps keep input order", func(t *testing.T) {
		links := []entity.Link{
			{Slug: "a", CreatedAt: date(time.May, 5), Clicks: 1},
			{Slug: "b", CreatedAt: date(time.May, 5), Clicks: 2},
		}

		summary := Compute(links, nil)

		assert.Equal(t, []entity.ChartPoint{
			{Date: "May 5", Clicks: 1},
			{Date: "May 5", Clicks: 2},
		}, summary.Series)
	})

	t.Run("dates in location", func(t *testing.T) {
		loc := time.FixedZone("UTC-12", -12*60*60)
		links := []entity.Link{
			{CreatedAt: date(time.January, 5), Clicks: 4},
		}

		summary := Compute(links, loc)

		assert.Equal(t, "Jan 4", summary.Series[0].Date)
	})

	t.Run("idempotent", func(t *testing.T) {
		links := []entity.Link{
			{CreatedAt: date(time.July, 9), Clicks: 3},
			{CreatedAt: date(time.July, 8), Clicks: 0},
		}

		assert.Equal(t, Compute(links, nil), Compute(links, nil))
	})
}

func TestDashboard_Summary(t *testing.T) {
	t.Run("store error", func(t *testing.T) {
		errUnknown := errors.New("unknown error")
		storeMock := mocks.NewMockLinkStore(t)
		storeMock.
			On("List", context.Background(), "alice").
			Once().
			Return(nil, errUnknown)

		summary, err := NewDashboard(storeMock, nil).Summary(context.Background(), "alice")

		assert.ErrorIs(t, err, errUnknown)
		assert.Nil(t, summary)
	})

	t.Run("recomputes on every read", func(t *testing.T) {
		storeMock := mocks.NewMockLinkStore(t)
		storeMock.
			On("List", context.Background(), "alice").
			Once().
			Return([]entity.Link{{CreatedAt: date(time.June, 1), Clicks: 2}}, nil)
		storeMock.
			On("List", context.Background(), "alice").
			Once().
			Return([]entity.Link{
				{CreatedAt: date(time.June, 1), Clicks: 2},
				{CreatedAt: date(time.June, 2), Clicks: 6},
			}, nil)

		dashboard := NewDashboard(storeMock, time.UTC)

		first, err := dashboard.Summary(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, 1, first.TotalLinks)

		second, err := dashboard.Summary(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, second.TotalLinks)
		assert.Equal(t, int64(8), second.TotalClicks)
		assert.Equal(t, "4.0", second.AverageLabel())
	})
}
