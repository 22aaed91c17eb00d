// Package analytics derives dashboard metrics from a deal snapshot.
// Every function is pure: same deals and same clock give the same
// result, nothing is cached or mutated, and each read recomputes from
// scratch over the full collection.
package analytics

import (
	"sort"

	"github.com/lmercier/dealdesk/internal/deal"
)

// OpenDeals returns the deals still in a non-terminal stage, in input
// order. Deals with unrecognized stages are not open.
func OpenDeals(deals []deal.Deal) []deal.Deal {
	var open []deal.Deal
	for _, d := range deals {
		if d.PipelineStage.Open() {
			open = append(open, d)
		}
	}
	return open
}

// GrossPipeline sums the face value of all open deals.
func GrossPipeline(deals []deal.Deal) float64 {
	var sum float64
	for _, d := range deals {
		if d.PipelineStage.Open() {
			sum += d.DealValue
		}
	}
	return sum
}

// WeightedPipeline sums open deal values discounted by each stage's
// close probability.
func WeightedPipeline(deals []deal.Deal) float64 {
	var sum float64
	for _, d := range deals {
		if d.PipelineStage.Open() {
			sum += d.DealValue * d.PipelineStage.Probability()
		}
	}
	return sum
}

// WonDeals returns the deals in Closed Won, in input order.
func WonDeals(deals []deal.Deal) []deal.Deal {
	return filterStage(deals, deal.StageClosedWon)
}

// LostDeals returns the deals in Closed Lost, in input order.
func LostDeals(deals []deal.Deal) []deal.Deal {
	return filterStage(deals, deal.StageClosedLost)
}

func filterStage(deals []deal.Deal, stage deal.Stage) []deal.Deal {
	var out []deal.Deal
	for _, d := range deals {
		if d.PipelineStage == stage {
			out = append(out, d)
		}
	}
	return out
}

// ConversionRate is won over closed (won plus lost), in [0,1].
// It is 0 when nothing has closed yet, never a division by zero.
func ConversionRate(deals []deal.Deal) float64 {
	won := len(WonDeals(deals))
	closed := won + len(LostDeals(deals))
	if closed == 0 {
		return 0
	}
	return float64(won) / float64(closed)
}

// QuickWins returns the late-stage deals (Negotiation or Proposal
// Sent) worth at least the median of all positive deal values. The
// median is the upper median, element floor(n/2) of the ascending
// sort, never an average of two. Zero or negative values stay out of
// the median sample but a zero-value late-stage deal still qualifies
// when the median itself is 0.
func QuickWins(deals []deal.Deal) []deal.Deal {
	median := positiveMedian(deals)
	var wins []deal.Deal
	for _, d := range deals {
		late := d.PipelineStage == deal.StageNegotiation || d.PipelineStage == deal.StageProposalSent
		if late && d.DealValue >= median {
			wins = append(wins, d)
		}
	}
	return wins
}

func positiveMedian(deals []deal.Deal) float64 {
	var values []float64
	for _, d := range deals {
		if d.DealValue > 0 {
			values = append(values, d.DealValue)
		}
	}
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	return values[len(values)/2]
}

// StageSummary is one funnel slice of the open pipeline.
type StageSummary struct {
	Stage deal.Stage `json:"stage"`
	Count int        `json:"count"`
	Value float64    `json:"value"`
}

// PipelineByStage reports deal count and summed value for every open
// stage in funnel order, including stages with no matching deals.
func PipelineByStage(deals []deal.Deal) []StageSummary {
	summaries := make([]StageSummary, 0, len(deal.OpenStages))
	for _, stage := range deal.OpenStages {
		s := StageSummary{Stage: stage}
		for _, d := range deals {
			if d.PipelineStage == stage {
				s.Count++
				s.Value += d.DealValue
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// SourceCount is one lead-source facet.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// LeadsBySource groups deals by their exact leadSource string (no
// casing or whitespace normalization) and sorts the facets by count
// descending. Tie order is unspecified.
func LeadsBySource(deals []deal.Deal) []SourceCount {
	counts := make(map[string]int)
	var order []string
	for _, d := range deals {
		if _, seen := counts[d.LeadSource]; !seen {
			order = append(order, d.LeadSource)
		}
		counts[d.LeadSource]++
	}

	facets := make([]SourceCount, 0, len(order))
	for _, src := range order {
		facets = append(facets, SourceCount{Source: src, Count: counts[src]})
	}
	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].Count > facets[j].Count
	})
	return facets
}
