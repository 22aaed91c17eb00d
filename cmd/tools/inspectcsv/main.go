// inspectcsv loads a deals CSV and prints the dashboard KPIs without
// starting the server. Handy for eyeballing an export before upload.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lmercier/dealdesk/internal/analytics"
	"github.com/lmercier/dealdesk/internal/deal"
	"github.com/lmercier/dealdesk/internal/ingest"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: inspectcsv <file.csv>")
	}
	path := os.Args[1]
	if err := ingest.CheckFilename(path); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	now := time.Now()
	deals, err := ingest.Normalize(f, now)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"Deals", len(deals)})
	t.AppendRow(table.Row{"Open", len(analytics.OpenDeals(deals))})
	t.AppendRow(table.Row{"Won", len(analytics.WonDeals(deals))})
	t.AppendRow(table.Row{"Lost", len(analytics.LostDeals(deals))})
	t.AppendRow(table.Row{"Gross pipeline", deal.FormatEUR(analytics.GrossPipeline(deals))})
	t.AppendRow(table.Row{"Weighted pipeline", deal.FormatEUR(analytics.WeightedPipeline(deals))})
	t.AppendRow(table.Row{"Conversion rate", fmt.Sprintf("%.0f%%", analytics.ConversionRate(deals)*100)})
	for _, p := range analytics.ForecastSeries(deals, now, analytics.DefaultHorizons) {
		t.AppendRow(table.Row{"Forecast " + p.Label, deal.FormatEUR(p.Value)})
	}
	t.Render()

	st := table.NewWriter()
	st.SetOutputMirror(os.Stdout)
	st.AppendHeader(table.Row{"Stage", "Count", "Value"})
	for _, s := range analytics.PipelineByStage(deals) {
		st.AppendRow(table.Row{string(s.Stage), s.Count, deal.FormatEUR(s.Value)})
	}
	st.Render()
}
