package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/cambio"
	"github.com/etnz/cambio/date"
	"github.com/etnz/cambio/fetch"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/symbols", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"symbols":{
			"BRL":{"description":"Brazilian Real","code":"BRL","symbol":"R$"},
			"CHF":{"description":"Swiss Franc","code":"CHF"},
			"EUR":{"description":"Euro","code":"EUR","symbol":"€"}}}`))
	})
	mux.HandleFunc("/latest", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("base") {
		case "USD":
			w.Write([]byte(`{"base":"USD","date":"2025-05-02","rates":{"ZAR":18.4,"USD":1,"EUR":0.88,"BRL":5.62,"AED":3.67}}`))
		default:
			w.Write([]byte(`{"success":false,"error":{"code":201,"info":"invalid base currency"}}`))
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(fetch.New(fetch.Options{}), srv.URL)
}

func TestSymbols(t *testing.T) {
	symbols, err := newTestClient(t).Symbols(context.Background())
	if err != nil {
		t.Fatalf("Symbols() unexpected error = %v", err)
	}
	if len(symbols) != 2 || symbols["BRL"] != "R$" || symbols["EUR"] != "€" {
		t.Errorf("Symbols() = %v want BRL and EUR only", symbols)
	}
}

func TestLatest(t *testing.T) {
	c := newTestClient(t)
	got, err := c.Latest(context.Background(), "usd", 3)
	if err != nil {
		t.Fatalf("Latest() unexpected error = %v", err)
	}
	day := date.New(2025, 5, 2)
	want := []cambio.Quotation{
		{Currency: "ZAR", LatestDate: day, LatestValue: 18.4},
		{Currency: "EUR", LatestDate: day, LatestValue: 0.88},
		{Currency: "BRL", LatestDate: day, LatestValue: 5.62},
	}
	if len(got) != len(want) {
		t.Fatalf("Latest() = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Latest()[%d] = %+v want %+v", i, got[i], want[i])
		}
		if got[i].HasPrevious() {
			t.Errorf("Latest()[%d] has a previous value", i)
		}
	}

	all, err := c.Latest(context.Background(), "USD", 0)
	if err != nil {
		t.Fatalf("Latest(limit 0) unexpected error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Latest(limit 0) len = %d want 4", len(all))
	}
}

func TestLatestRefused(t *testing.T) {
	if _, err := newTestClient(t).Latest(context.Background(), "XYZ", 0); err == nil {
		t.Errorf("Latest(XYZ) expected an error")
	}
}
