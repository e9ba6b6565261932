package entity

// ChartPoint is one sample of the dashboard time series.
type ChartPoint struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}
