package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etnz/cambio"
)

func identity(md string) string { return md }

func directory(fail *atomic.Bool, calls *atomic.Int32) *cambio.Directory {
	src := cambio.SourceFunc(func(ctx context.Context) ([]cambio.Record, error) {
		calls.Add(1)
		if fail.Load() {
			return nil, errors.New("network down")
		}
		return []cambio.Record{
			{Code: "BR", Translations: map[string]string{"por": "Brasil"}, Currencies: []cambio.Currency{{Code: "BRL", Symbol: "R$"}}},
			{Code: "ST", Translations: map[string]string{"por": "São Tomé e Príncipe"}, Currencies: []cambio.Currency{{Code: "STN", Symbol: "Db"}}},
			{Code: "US", Common: "United States", Currencies: []cambio.Currency{{Code: "USD", Symbol: "$"}}},
		}, nil
	})
	return cambio.NewDirectory(src, cambio.Options{}, 0)
}

func TestPickerSelects(t *testing.T) {
	var fail atomic.Bool
	var calls atomic.Int32
	var picked []cambio.Entity
	s := cambio.NewSelector(directory(&fail, &calls), func(e cambio.Entity) { picked = append(picked, e) })

	var out bytes.Buffer
	p := &picker{s: s, out: &out, render: identity}
	in := strings.NewReader("sao\n:7\n:1\nignored after the pick\n")
	if err := p.run(context.Background(), in); err != nil {
		t.Fatalf("run() unexpected error = %v", err)
	}

	if len(picked) != 1 || picked[0].Code != "ST" {
		t.Fatalf("run() picked %v want [ST]", picked)
	}
	if calls.Load() != 1 {
		t.Errorf("directory loaded %d times want 1", calls.Load())
	}
	if s.State() != cambio.Closed || s.Query() != "" {
		t.Errorf("after pick state, query = %v, %q want closed, empty", s.State(), s.Query())
	}
	if !strings.Contains(out.String(), "| 1 | São Tomé e Príncipe |") {
		t.Errorf("run() output missing the search result:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `escolha inválida "7"`) {
		t.Errorf("run() output missing the invalid pick message:\n%s", out.String())
	}
}

func TestPickerRetry(t *testing.T) {
	var fail atomic.Bool
	var calls atomic.Int32
	fail.Store(true)
	var picked []cambio.Entity
	s := cambio.NewSelector(directory(&fail, &calls), func(e cambio.Entity) { picked = append(picked, e) })

	var out bytes.Buffer
	p := &picker{s: s, out: &out, render: identity}

	// the first search fails, then the network is back.
	in := &switchingReader{lines: []string{"usd", ":retry", "usd", ":1"}, after: 1, do: func() { fail.Store(false) }}
	if err := p.run(context.Background(), in); err != nil {
		t.Fatalf("run() unexpected error = %v", err)
	}
	if !strings.Contains(out.String(), "> não foi possível carregar") {
		t.Errorf("run() output missing the load error:\n%s", out.String())
	}
	if len(picked) != 1 || picked[0].Code != "US" {
		t.Errorf("run() picked %v want [US]", picked)
	}
	if calls.Load() != 2 {
		t.Errorf("directory loaded %d times want 2", calls.Load())
	}
}

func TestPickerQuit(t *testing.T) {
	var fail atomic.Bool
	var calls atomic.Int32
	closed := 0
	s := cambio.NewSelector(directory(&fail, &calls), func(e cambio.Entity) { t.Errorf("unexpected pick %v", e) })
	s.OnClose = func() { closed++ }

	p := &picker{s: s, out: new(bytes.Buffer), render: identity}
	if err := p.run(context.Background(), strings.NewReader(":q\n")); err != nil {
		t.Fatalf("run() unexpected error = %v", err)
	}
	if closed != 1 {
		t.Errorf("OnClose called %d times want 1", closed)
	}
	if calls.Load() != 0 {
		t.Errorf("directory loaded %d times want 0", calls.Load())
	}
}

// switchingReader serves lines one by one and calls do once 'after' lines were read.
type switchingReader struct {
	lines []string
	after int
	do    func()
	read  int
}

func (r *switchingReader) Read(b []byte) (int, error) {
	if r.read >= len(r.lines) {
		return 0, io.EOF
	}
	if r.read == r.after {
		r.do()
	}
	n := copy(b, r.lines[r.read]+"\n")
	r.read++
	return n, nil
}
