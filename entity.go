package cambio

import "context"

// Currency identifies a currency by its ISO-4217 code.
type Currency struct {
	Code   string `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Entity is a selectable country, with the currency it maps to.
type Entity struct {
	Name     string   `json:"name"`
	Code     string   `json:"code"` // two-letter region code
	Currency Currency `json:"currency"`
}

// Record is a raw directory entry, as published by the directory source.
//
// Currencies are kept in source order: the first one is canonical.
type Record struct {
	Common       string            // common name, usually English
	Translations map[string]string // language code (ISO 639-3) to common name
	Code         string            // cca2
	Currencies   []Currency
}

// Source fetches raw directory records.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) ([]Record, error)

func (f SourceFunc) Records(ctx context.Context) ([]Record, error) { return f(ctx) }

// DedupKey selects the field used to collapse duplicate entities.
type DedupKey int

const (
	// ByRegion keeps one entity per region code (country datasets).
	ByRegion DedupKey = iota
	// ByCurrency keeps one entity per currency code (currency datasets).
	ByCurrency
)

func (k DedupKey) String() string {
	switch k {
	case ByRegion:
		return "region"
	case ByCurrency:
		return "currency"
	default:
		return "unknown"
	}
}

// key returns e's dedup key.
func (k DedupKey) key(e Entity) string {
	if k == ByCurrency {
		return e.Currency.Code
	}
	return e.Code
}
