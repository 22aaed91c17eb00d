package analytics

import (
	"fmt"
	"time"

	"github.com/lmercier/dealdesk/internal/deal"
)

// Forecast projects the weighted value of open deals whose next
// follow-up falls strictly before now plus the horizon.
func Forecast(deals []deal.Deal, now time.Time, horizonDays int) float64 {
	horizon := now.AddDate(0, 0, horizonDays)
	var sum float64
	for _, d := range deals {
		if d.PipelineStage.Open() && d.NextFollowupDate.Before(horizon) {
			sum += d.DealValue * d.PipelineStage.Probability()
		}
	}
	return sum
}

// Horizons are the three forecast windows, in days.
type Horizons struct {
	Short int `json:"short"`
	Mid   int `json:"mid"`
	Long  int `json:"long"`
}

// DefaultHorizons matches the dashboard's 30/60/90 day windows.
var DefaultHorizons = Horizons{Short: 30, Mid: 60, Long: 90}

// ForecastPoint is one horizon of the forecast series.
type ForecastPoint struct {
	Label string  `json:"label"`
	Days  int     `json:"days"`
	Value float64 `json:"value"`
}

// ForecastSeries evaluates the forecast at the short, mid and long
// horizons, in that order. Labels keep the dashboard's "30j" form.
func ForecastSeries(deals []deal.Deal, now time.Time, h Horizons) []ForecastPoint {
	points := make([]ForecastPoint, 0, 3)
	for _, days := range []int{h.Short, h.Mid, h.Long} {
		points = append(points, ForecastPoint{
			Label: fmt.Sprintf("%dj", days),
			Days:  days,
			Value: Forecast(deals, now, days),
		})
	}
	return points
}

// ColdDeals returns deals that are not closed and whose last contact
// is strictly older than maxAge. A deal touched exactly maxAge ago is
// not yet cold. Unrecognized stages count as not closed, so they can
// go cold too.
func ColdDeals(deals []deal.Deal, now time.Time, maxAge time.Duration) []deal.Deal {
	threshold := now.Add(-maxAge)
	var cold []deal.Deal
	for _, d := range deals {
		if !d.PipelineStage.Terminal() && d.LastContactDate.Before(threshold) {
			cold = append(cold, d)
		}
	}
	return cold
}

// UnhandledLeads returns deals still sitting in the Lead stage that
// were created strictly more than maxAge ago.
func UnhandledLeads(deals []deal.Deal, now time.Time, maxAge time.Duration) []deal.Deal {
	threshold := now.Add(-maxAge)
	var unhandled []deal.Deal
	for _, d := range deals {
		if d.PipelineStage == deal.StageLead && d.CreatedDate.Before(threshold) {
			unhandled = append(unhandled, d)
		}
	}
	return unhandled
}
