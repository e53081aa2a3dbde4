package yfin

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

// Latest returns the latest traded price for a symbol.
//
// The quote lives deep in the chart payload's meta block; a jsonpath query is
// less brittle here than mirroring the whole meta structure.
func (c *Client) Latest(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/%s?range=1d&interval=1d", c.base, symbol)

	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	return val, nil
}
