package cambio

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/cambio/date"
	"github.com/shopspring/decimal"
)

// fixedRates serves a single rate and history for every pair.
type fixedRates struct {
	rate    decimal.Decimal
	history *date.History[float64]
	err     error
}

func (r fixedRates) Last(ctx context.Context, from, to string) (decimal.Decimal, error) {
	return r.rate, r.err
}

func (r fixedRates) Daily(ctx context.Context, from, to string, days int) (*date.History[float64], error) {
	return r.history, r.err
}

func TestConvert(t *testing.T) {
	c := Converter{Rates: fixedRates{rate: decimal.RequireFromString("5.1234")}}
	usdbrl := Pair{From: "USD", To: "BRL"}

	tests := []struct {
		amount string
		want   string
	}{
		{"100", "512.34"},
		{"1.000,50", "5125.96"},
		{"0.5", "2.56"},
	}
	for _, tt := range tests {
		conv, ok, err := c.Convert(context.Background(), usdbrl, tt.amount)
		if err != nil || !ok {
			t.Errorf("Convert(%q) unexpected error = %v, ok = %v", tt.amount, err, ok)
			continue
		}
		if got := conv.Result.Fixed(); got != tt.want {
			t.Errorf("Convert(%q) = %s want %s", tt.amount, got, tt.want)
		}
		if conv.Result.Currency() != "BRL" {
			t.Errorf("Convert(%q) currency = %s want BRL", tt.amount, conv.Result.Currency())
		}
	}
}

func TestConvertBlankAndErrors(t *testing.T) {
	c := Converter{Rates: fixedRates{rate: decimal.NewFromInt(2)}}
	p := Pair{From: "USD", To: "BRL"}

	if _, ok, err := c.Convert(context.Background(), p, "  "); ok || err != nil {
		t.Errorf("Convert(blank) = ok %v, err %v want false, nil", ok, err)
	}
	if _, _, err := c.Convert(context.Background(), p, "12abc"); err == nil {
		t.Errorf("Convert(12abc) expected an error")
	}

	c.Rates = fixedRates{err: errors.New("rate limit")}
	if _, _, err := c.Convert(context.Background(), p, "1"); err == nil {
		t.Errorf("Convert() with failing rates expected an error")
	}
}

func TestChart(t *testing.T) {
	h := new(date.History[float64])
	h.Append(date.New(2025, 5, 2), 5.70)
	h.Append(date.New(2025, 5, 1), 5.65)

	points, err := Converter{Rates: fixedRates{history: h}}.Chart(context.Background(), Pair{"USD", "BRL"}, 30)
	if err != nil {
		t.Fatalf("Chart() unexpected error = %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Chart() len = %d want 2", len(points))
	}
	if points[0].Label != "01/05" || points[0].Value != 5.65 || points[1].Label != "02/05" {
		t.Errorf("Chart() = %v want oldest first with dd/MM labels", points)
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		want    Pair
		wantErr bool
	}{
		{"USD-BRL", Pair{"USD", "BRL"}, false},
		{"eur/usd", Pair{"EUR", "USD"}, false},
		{"GBPJPY", Pair{"GBP", "JPY"}, false},
		{"US-BRL", Pair{}, true},
		{"dollar", Pair{}, true},
		{"USD-XX1", Pair{}, true},
		{"abc-brl", Pair{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePair(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePair(%q) = %v, %v want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if got := (Pair{"USD", "BRL"}).Swap(); got != (Pair{"BRL", "USD"}) {
		t.Errorf("Swap() = %v want BRL-USD", got)
	}
}

func TestMergeCurrencies(t *testing.T) {
	names := map[string]string{"USD": "Dólar Americano", "BRL": "Real Brasileiro", "XYZ": "Unknown"}
	symbols := map[string]string{"USD": "$"}

	got := MergeCurrencies(names, symbols)
	want := []Currency{
		{Code: "BRL", Name: "Real Brasileiro", Symbol: "R$"},
		{Code: "USD", Name: "Dólar Americano", Symbol: "$"},
		{Code: "XYZ", Name: "Unknown", Symbol: "XYZ"},
	}
	if len(got) != len(want) {
		t.Fatalf("MergeCurrencies() = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MergeCurrencies()[%d] = %v want %v", i, got[i], want[i])
		}
	}
}

func TestDisplaySymbol(t *testing.T) {
	tests := []struct {
		c    Currency
		want string
	}{
		{Currency{Code: "BRL", Symbol: "R$"}, "R$"},
		{Currency{Code: "EUR", Symbol: "€"}, "€"},
		{Currency{Code: "CHF", Symbol: "CHF"}, "CHF"},
		{Currency{Code: "CHF", Symbol: "Fr"}, "CHF"},
		{Currency{Code: "AOA", Symbol: ""}, "AOA"},
		{Currency{Code: "usd", Symbol: "USD"}, "usd"},
	}
	for _, tt := range tests {
		if got := DisplaySymbol(tt.c); got != tt.want {
			t.Errorf("DisplaySymbol(%v) = %q want %q", tt.c, got, tt.want)
		}
	}
}
