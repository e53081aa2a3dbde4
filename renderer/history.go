package renderer

import (
	"bytes"
	"fmt"

	"divtrack"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the full event history of one instrument.
func HistoryMarkdown(r *divtrack.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividend history for %s", r.Symbol))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Amount", "Price", "Yield", "Status"},
		Rows:   [][]string{},
	}
	for _, e := range r.Events {
		status := "paid"
		if e.Forecasted {
			status = "forecast"
		}
		price, _ := e.RefPrice()
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			amount(e.Payment(), r.Currency),
			amount(price, r.Currency),
			percent(e.Yield),
			status,
		})
	}
	doc.Table(table)

	return doc.String()
}

// ProfileMarkdown renders the classified cadence of one instrument.
func ProfileMarkdown(symbol string, p divtrack.Profile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payment cadence of %s", symbol))
	if p.Group != "" {
		doc.PlainTextf("%s pays **%s** (%s).", symbol, p.Period, p.Group)
	} else {
		doc.PlainTextf("%s pays **%s**.", symbol, p.Period)
	}

	return doc.String()
}

// ProjectionMarkdown renders the projected payment dates of one instrument.
func ProjectionMarkdown(r *divtrack.ProjectionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projected payments for %s", r.Symbol))
	if r.Group != "" {
		doc.PlainTextf("Cadence: %s (%s)", r.Frequency, r.Group)
	} else {
		doc.PlainTextf("Cadence: %s", r.Frequency)
	}

	if len(r.Dates) == 0 {
		doc.PlainText("No projected payments.")
		return doc.String()
	}

	items := make([]string, 0, len(r.Dates))
	for _, d := range r.Dates {
		items = append(items, d.String())
	}
	doc.BulletList(items...)

	return doc.String()
}
