package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"BRL","bid":"5.12"}`))
	}))
	defer srv.Close()

	var got struct {
		Code string `json:"code"`
		Bid  string `json:"bid"`
	}
	if err := New(Options{}).GetJSON(context.Background(), srv.URL, &got); err != nil {
		t.Fatalf("GetJSON() unexpected error = %v", err)
	}
	if got.Code != "BRL" || got.Bid != "5.12" {
		t.Errorf("GetJSON() = %+v want BRL 5.12", got)
	}
}

func TestGetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(Options{}).Get(context.Background(), srv.URL+"/v3.1/all")
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("Get() error = %v want a *StatusError", err)
	}
	if serr.Code != http.StatusServiceUnavailable {
		t.Errorf("StatusError.Code = %d want %d", serr.Code, http.StatusServiceUnavailable)
	}
}

func TestDiskCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`["cached"]`))
	}))
	defer srv.Close()

	c := New(Options{CacheDir: t.TempDir()})
	for i := 0; i < 3; i++ {
		body, err := c.Get(context.Background(), srv.URL+"/list")
		if err != nil {
			t.Fatalf("Get() #%d unexpected error = %v", i, err)
		}
		if string(body) != `["cached"]` {
			t.Errorf("Get() #%d = %q want %q", i, body, `["cached"]`)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times want 1", n)
	}

	// failures are not cached
	for i := 0; i < 2; i++ {
		if _, err := c.Get(context.Background(), srv.URL+"/missing"); err == nil {
			t.Errorf("Get(/missing) expected an error")
		}
	}
	if n := hits.Load(); n != 3 {
		t.Errorf("server hit %d times want 3", n)
	}
}
