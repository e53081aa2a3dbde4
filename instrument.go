package divtrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"divtrack/date"
)

// symbolRegex checks the ticker symbol format: uppercase alphanumerics with
// optional dot-separated class suffix ("BRK.B") or numeric codes ("005930").
var symbolRegex = regexp.MustCompile(`^[A-Z0-9]{1,10}(\.[A-Z0-9]{1,4})?$`)

// currencyCodeRegex checks the format: 3 uppercase letters (ISO 4217).
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Instrument is the metadata of one tracked instrument.
type Instrument struct {
	symbol    string
	name      string
	currency  string
	frequency date.Period
	group     string
	upcoming  bool
}

// NewInstrument validates the symbol and currency and returns the instrument.
func NewInstrument(symbol, name, currency string) (Instrument, error) {
	if !symbolRegex.MatchString(symbol) {
		return Instrument{}, fmt.Errorf("invalid symbol %q", symbol)
	}
	if !currencyCodeRegex.MatchString(currency) {
		return Instrument{}, fmt.Errorf("invalid currency %q: must be 3 uppercase letters", currency)
	}
	return Instrument{symbol: symbol, name: name, currency: currency}, nil
}

func (i Instrument) Symbol() string   { return i.symbol }
func (i Instrument) Name() string     { return i.name }
func (i Instrument) Currency() string { return i.currency }

// Profile returns the last recorded cadence of the instrument.
func (i Instrument) Profile() Profile { return Profile{Period: i.frequency, Group: i.group} }

// SetProfile records a freshly classified cadence.
func (i *Instrument) SetProfile(p Profile) {
	i.frequency = p.Period
	i.group = p.Group
}

// Upcoming reports whether the instrument is announced but not yet trading.
// Upcoming instruments are excluded from analysis and projection.
func (i Instrument) Upcoming() bool { return i.upcoming }

// MarkUpcoming flags the instrument as announced but not yet trading.
func (i *Instrument) MarkUpcoming() { i.upcoming = true }

// Filename returns the canonical data file name for the instrument:
// the symbol lowercased with dots replaced ("BRK.B" → "brk-b.json").
func (i Instrument) Filename() string {
	return strings.ToLower(strings.ReplaceAll(i.symbol, ".", "-")) + ".json"
}

// jinstrument is the wire form of an Instrument in the navigation file.
type jinstrument struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name,omitempty"`
	Currency  string `json:"currency"`
	Frequency string `json:"frequency,omitempty"`
	Group     string `json:"group,omitempty"`
	Upcoming  bool   `json:"upcoming,omitempty"`
}

// DecodeInstruments parses the navigation file: a JSONL document with one
// instrument per line. A line that redefines an already seen symbol is
// reported as a format error.
func DecodeInstruments(filename string, r io.Reader) ([]Instrument, error) {
	var instruments []Instrument
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		var ji jinstrument
		if err := json.Unmarshal([]byte(txt), &ji); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, line, err)
		}
		if seen[ji.Symbol] {
			return nil, fmt.Errorf("format error in %s:%d: symbol %q is already defined", filename, line, ji.Symbol)
		}
		seen[ji.Symbol] = true

		inst, err := NewInstrument(ji.Symbol, ji.Name, ji.Currency)
		if err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, line, err)
		}
		period, err := date.ParsePeriod(ji.Frequency)
		if err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, line, err)
		}
		inst.frequency = period
		inst.group = ji.Group
		inst.upcoming = ji.Upcoming
		instruments = append(instruments, inst)
	}
	return instruments, scanner.Err()
}

// EncodeInstruments writes the navigation file back in canonical JSONL form,
// one instrument per line with a stable field order.
func EncodeInstruments(w io.Writer, instruments []Instrument) error {
	bw := bufio.NewWriter(w)
	for _, inst := range instruments {
		var jw jsonObjectWriter
		jw.Append("symbol", inst.symbol)
		jw.Optional("name", inst.name)
		jw.Append("currency", inst.currency)
		if inst.frequency != date.None {
			jw.Append("frequency", inst.frequency.String())
		}
		jw.Optional("group", inst.group)
		jw.Optional("upcoming", inst.upcoming)
		line, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode instrument %q: %w", inst.symbol, err)
		}
		bw.Write(line)
		bw.WriteString("\n")
	}
	return bw.Flush()
}
