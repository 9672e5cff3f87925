package fetch

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/etnz/cambio/date"
	"github.com/gofrs/flock"
)

// logging logs every round trip that reaches the network.
type logging struct {
	base http.RoundTripper
}

func (l logging) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := l.base.RoundTrip(req)
	if err != nil {
		log.Debugf("%v %v%v: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	log.Debugf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	return resp, nil
}

// diskCache implements a simple disk cache for HTTP responses.
//
// Keys include the current day, so entries expire every day.
type diskCache struct {
	base http.RoundTripper
	dir  string
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If a fresh cached response is not found, it proceeds
// with the actual HTTP request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("cambio-%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		log.Debugf("cache hit %v%v", req.URL.Host, req.URL.Path)
		return cached, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Warnf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// lock returns the lock guarding a cache entry.
func (c *diskCache) lock(key string) *flock.Flock {
	return flock.New(filepath.Join(c.dir, key+".lock"))
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	fl := c.lock(key)
	if err := fl.RLock(); err != nil {
		return nil, err
	}
	defer fl.Unlock()

	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response to disk cache. The response body is left readable.
func (c *diskCache) put(key string, resp *http.Response) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	fl := c.lock(key)
	if err := fl.Lock(); err != nil {
		return err
	}
	defer fl.Unlock()
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
