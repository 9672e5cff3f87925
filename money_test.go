package cambio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(1234.5, "BRL"), "R$1.234,50"},
		{M(1234, "JPY"), "¥1,234"},
		{M(12.5, "XYZ"), "12.50 XYZ"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v.String() = %q want %q", tt.m.Value(), got, tt.want)
		}
	}
}

func TestMoneyRound(t *testing.T) {
	if got := M(10.567, "BRL").Round(); !got.Value().Equal(decimal.RequireFromString("10.57")) {
		t.Errorf("Round(BRL) = %v want 10.57", got.Value())
	}
	if got := M(10.567, "JPY").Round(); !got.Value().Equal(decimal.NewFromInt(11)) {
		t.Errorf("Round(JPY) = %v want 11", got.Value())
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"10", "10", false},
		{"10.5", "10.5", false},
		{"10,5", "10.5", false},
		{"10.000.000,00", "10000000", false},
		{" 1 000,25 ", "1000.25", false},
		{"abc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}
