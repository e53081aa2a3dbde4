package divtrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"divtrack/date"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to persist the canonical event sequence of one
// instrument as a single JSON document: an array of event objects sorted
// ascending by date, one object per line so the files stay git-friendly.
//
// Field names (date, open, close, amount, amountFixed, forecasted, yield) and
// their order are stable across runs: downstream readers rely on them, and the
// compare-before-write contract requires byte-identical output for unchanged
// input.

// jevent is the wire form of an Event, used for decoding only.
type jevent struct {
	Date        string          `json:"date"`
	Open        decimal.Decimal `json:"open"`
	Close       decimal.Decimal `json:"close"`
	Amount      decimal.Decimal `json:"amount"`
	AmountFixed decimal.Decimal `json:"amountFixed"`
	Forecasted  bool            `json:"forecasted"`
	Yield       decimal.Decimal `json:"yield"`
}

// encodeEvent writes one event as a field-ordered JSON object.
func encodeEvent(e Event) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Optional("open", e.Open)
	w.Optional("close", e.Close)
	w.Optional("amount", e.Amount)
	w.Optional("amountFixed", e.AmountFixed)
	w.Optional("forecasted", e.Forecasted)
	w.Optional("yield", e.Yield)
	return w.MarshalJSON()
}

// EncodeSequence writes the canonical sequence as a JSON array with one event
// object per line.
func EncodeSequence(w io.Writer, seq Sequence) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("[")
	for i, e := range seq {
		if i > 0 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
		line, err := encodeEvent(e)
		if err != nil {
			return fmt.Errorf("cannot encode event on %s: %w", e.Date, err)
		}
		bw.Write(line)
	}
	bw.WriteString("\n]\n")
	return bw.Flush()
}

// DecodeSequence reads a canonical sequence document.
//
// A record with an unparseable date is dropped and counted in skipped; it is
// a non-fatal incident, not a sequence-aborting error. The returned sequence
// is sorted ascending by date whatever the file order was.
func DecodeSequence(r io.Reader) (seq Sequence, skipped int, err error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("not a canonical sequence document: %w", err)
	}

	seq = make(Sequence, 0, len(raw))
	for _, line := range raw {
		var je jevent
		if err := json.Unmarshal(line, &je); err != nil {
			skipped++
			continue
		}
		on, err := date.Parse(je.Date)
		if err != nil {
			skipped++
			continue
		}
		seq = append(seq, Event{
			Date:        on,
			Open:        je.Open,
			Close:       je.Close,
			Amount:      je.Amount,
			AmountFixed: je.AmountFixed,
			Forecasted:  je.Forecasted,
			Yield:       je.Yield,
		})
	}
	seq.sort()
	return seq, skipped, nil
}
