package cmd

import (
	"slices"
	"testing"

	"github.com/etnz/cambio"
)

func TestPredictCurrencies(t *testing.T) {
	trie := newCurrencyTrie([]string{"BRL", "BSD", "EUR", "USD"})
	tests := []struct {
		prefix string
		want   []string
	}{
		{"b", []string{"BRL", "BSD"}},
		{"BR", []string{"BRL"}},
		{"", []string{"BRL", "BSD", "EUR", "USD"}},
		{"x", nil},
	}
	for _, tt := range tests {
		got := predictCurrencies(trie)(tt.prefix)
		slices.Sort(got)
		if !slices.Equal(got, tt.want) {
			t.Errorf("predictCurrencies(%q) = %v want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestPredictPairs(t *testing.T) {
	trie := newCurrencyTrie([]string{"BRL", "EUR", "USD"})
	got := predictPairs(trie)("usd-")
	slices.Sort(got)
	if want := []string{"USD-BRL", "USD-EUR"}; !slices.Equal(got, want) {
		t.Errorf("predictPairs(usd-) = %v want %v", got, want)
	}
	if got := predictPairs(trie)("e"); !slices.Equal(got, []string{"EUR"}) {
		t.Errorf("predictPairs(e) = %v want [EUR]", got)
	}
}

func TestDedupOptions(t *testing.T) {
	tests := []struct {
		by      string
		want    cambio.DedupKey
		wantErr bool
	}{
		{"", cambio.ByRegion, false},
		{"region", cambio.ByRegion, false},
		{"Currency", cambio.ByCurrency, false},
		{"planet", 0, true},
	}
	for _, tt := range tests {
		opts, err := dedupOptions(tt.by, true)
		if (err != nil) != tt.wantErr {
			t.Errorf("dedupOptions(%q) error = %v, wantErr %v", tt.by, err, tt.wantErr)
			continue
		}
		if err == nil && (opts.Dedup != tt.want || !opts.Restricted) {
			t.Errorf("dedupOptions(%q) = %+v want dedup %v restricted", tt.by, opts, tt.want)
		}
	}
}

func TestItemIndex(t *testing.T) {
	index := func(code string) int {
		return slices.Index([]string{"BRL", "EUR"}, code)
	}
	tests := []struct {
		arg  string
		want int
	}{
		{"1", 1},
		{"eur", 1},
		{"BRL", 0},
		{"JPY", -1},
		{"7", 7},
	}
	for _, tt := range tests {
		if got := itemIndex(index, tt.arg); got != tt.want {
			t.Errorf("itemIndex(%q) = %d want %d", tt.arg, got, tt.want)
		}
	}
}
