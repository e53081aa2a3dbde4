package yfin

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"divtrack/date"
)

// This file contains functions to access the Yahoo chart API.

// Client fetches series from the chart endpoint, caching responses for a day.
type Client struct {
	base   string // endpoint base, overridable in tests
	client *http.Client
}

const chartBase = "https://query1.finance.yahoo.com/v8/finance/chart"

// NewClient returns a client against the public chart endpoint.
func NewClient() *Client {
	return &Client{base: chartBase, client: newDailyCachingClient()}
}

// chartResponse is the payload shape of the chart endpoint.
//
//	{
//	  "chart": {
//	    "result": [{
//	      "timestamp": [1700055000, ...],
//	      "events": {"dividends": {"1700055000": {"amount": 0.25, "date": 1700055000}}},
//	      "indicators": {"quote": [{"open": [...], "close": [...]}]}
//	    }],
//	    "error": null
//	  }
//	}
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp []int64 `json:"timestamp"`
			Events    struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetchChart queries the chart endpoint for one symbol.
func (c *Client) fetchChart(symbol, events string) (*chartResponse, error) {
	addr := fmt.Sprintf("%s/%s?range=10y&interval=1d&events=%s", c.base, url.PathEscape(symbol), events)

	var content chartResponse
	if err := jwget(c.client, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch chart for %q: %w", symbol, err)
	}
	if e := content.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart error for %q: %s %s", symbol, e.Code, e.Description)
	}
	if len(content.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %q", symbol)
	}
	return &content, nil
}

// dateOf converts a chart unix timestamp to its trading date.
func dateOf(ts int64) date.Date {
	return date.New(time.Unix(ts, 0).UTC().Date())
}

// Dividends returns the auto-collected payment series for a symbol.
func (c *Client) Dividends(symbol string) (*date.History[float64], error) {
	content, err := c.fetchChart(symbol, "div")
	if err != nil {
		return nil, err
	}

	series := new(date.History[float64])
	for _, div := range content.Chart.Result[0].Events.Dividends {
		series.Append(dateOf(div.Date), div.Amount)
	}
	return series, nil
}

// Prices returns the daily open and close series for a symbol.
func (c *Client) Prices(symbol string) (open, close *date.History[float64], err error) {
	content, err := c.fetchChart(symbol, "div")
	if err != nil {
		return nil, nil, err
	}

	result := content.Chart.Result[0]
	open, close = new(date.History[float64]), new(date.History[float64])
	if len(result.Indicators.Quote) == 0 {
		return open, close, nil
	}
	quote := result.Indicators.Quote[0]
	for i, ts := range result.Timestamp {
		on := dateOf(ts)
		// nil slots are days the venue reported no bar for.
		if i < len(quote.Open) && quote.Open[i] != nil {
			open.Append(on, *quote.Open[i])
		}
		if i < len(quote.Close) && quote.Close[i] != nil {
			close.Append(on, *quote.Close[i])
		}
	}
	return open, close, nil
}
