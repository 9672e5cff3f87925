package cambio

import (
	"context"
	"sync"
)

// rec is a helper for test to create a raw record with a single currency.
func rec(code, common, por, currency string) Record {
	r := Record{Common: common, Code: code}
	if por != "" {
		r.Translations = map[string]string{"por": por}
	}
	if currency != "" {
		r.Currencies = []Currency{{Code: currency, Name: currency + " name", Symbol: "$"}}
	}
	return r
}

// world is a small directory used across tests.
func world() []Record {
	return []Record{
		rec("US", "United States", "Estados Unidos da América", "USD"),
		rec("BR", "Brazil", "Brasil", "BRL"),
		rec("EC", "Ecuador", "Equador", "USD"),
		rec("SV", "El Salvador", "El Salvador", "USD"),
		rec("AU", "Australia", "Austrália", "AUD"),
		rec("ST", "São Tomé and Príncipe", "São Tomé e Príncipe", "STN"),
		rec("DE", "Germany", "Alemanha", "EUR"),
		rec("AQ", "Antarctica", "Antártida", ""),
	}
}

// byCode indexes entities by region code.
func byCode(entities []Entity) map[string]Entity {
	m := make(map[string]Entity, len(entities))
	for _, e := range entities {
		m[e.Code] = e
	}
	return m
}

// names returns the names of entities, in order.
func names(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Name
	}
	return out
}

// countingSource serves records and counts how many times it was called.
type countingSource struct {
	mu      sync.Mutex
	calls   int
	records []Record
	err     error
}

func (s *countingSource) Records(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *countingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
