package yfin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"divtrack/date"
)

// chartFixture is a trimmed chart payload: two bars and one dividend.
const chartFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1718323200, 1718582400],
      "events": {"dividends": {"1718323200": {"amount": 0.25, "date": 1718323200}}},
      "indicators": {"quote": [{
        "open": [10.5, null],
        "close": [10.75, 10.9]
      }]}
    }],
    "error": null
  }
}`

func newTestClient(t *testing.T, payload string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)
	return &Client{base: server.URL, client: server.Client()}
}

func TestDividends(t *testing.T) {
	c := newTestClient(t, chartFixture)
	series, err := c.Dividends("TEST")
	if err != nil {
		t.Fatalf("Dividends() unexpected error = %v", err)
	}
	if series.Len() != 1 {
		t.Fatalf("Dividends() returned %d entries want 1", series.Len())
	}
	// 1718323200 is 2024-06-14 UTC.
	if v, ok := series.Get(date.New(2024, 6, 14)); !ok || v != 0.25 {
		t.Errorf("Dividends()[2024-06-14] = %v,%v want 0.25,true", v, ok)
	}
}

func TestPrices(t *testing.T) {
	c := newTestClient(t, chartFixture)
	open, close, err := c.Prices("TEST")
	if err != nil {
		t.Fatalf("Prices() unexpected error = %v", err)
	}
	if open.Len() != 1 {
		t.Errorf("Prices() open entries = %d want 1 (null bar skipped)", open.Len())
	}
	if close.Len() != 2 {
		t.Errorf("Prices() close entries = %d want 2", close.Len())
	}
}

func TestFetchChartError(t *testing.T) {
	c := newTestClient(t, `{"chart":{"result":[],"error":{"code":"Not Found","description":"no data"}}}`)
	if _, err := c.Dividends("MISSING"); err == nil {
		t.Error("Dividends() expected an error for a chart error payload")
	}
}
