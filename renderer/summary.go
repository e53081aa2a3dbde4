package renderer

import (
	"bytes"
	"fmt"

	"divtrack"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the one-line-per-instrument digest.
func SummaryMarkdown(r *divtrack.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Instruments")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Cadence", "Last payment", "Amount", "Next expected", "Yield"},
		Rows:   [][]string{},
	}
	for _, row := range r.Rows {
		cadence := row.Frequency.String()
		if row.Group != "" {
			cadence += " (" + row.Group + ")"
		}
		table.Rows = append(table.Rows, []string{
			row.Symbol,
			row.Name,
			cadence,
			day(row.LastPayment),
			amount(row.LastAmount, row.Currency),
			day(row.NextForecast),
			percent(row.Yield),
		})
	}
	doc.Table(table)

	return doc.String()
}

// UpdateMarkdown renders the outcome of one batch refresh run.
func UpdateMarkdown(s divtrack.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Update summary")
	doc.BulletList(
		fmt.Sprintf("updated: %d", s.Updated),
		fmt.Sprintf("unchanged: %d", s.Unchanged),
		fmt.Sprintf("failed: %d", s.Failed),
		fmt.Sprintf("records skipped: %d", s.RecordsSkipped),
	)
	if s.Errs != nil {
		doc.H2("Errors")
		doc.CodeBlocks(md.SyntaxHighlightNone, s.Errs.Error())
	}

	return doc.String()
}
