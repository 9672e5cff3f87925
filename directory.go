package cambio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultLoadTimeout bounds a directory fetch when the caller's context has no deadline.
const DefaultLoadTimeout = 15 * time.Second

// LoadError reports a failed directory load. Msg is meant to be shown to the user,
// who can retry.
type LoadError struct {
	Msg string
	Err error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// loadFailedMsg is the message shown when the directory cannot be loaded.
const loadFailedMsg = "não foi possível carregar a lista de países, tente novamente"

// Directory loads and caches the normalized entities of a Source.
//
// It is safe for concurrent use. The source is fetched at most once until Reset.
type Directory struct {
	src     Source
	opts    Options
	timeout time.Duration

	mu       sync.Mutex
	loaded   bool
	entities []Entity
}

// NewDirectory returns a Directory over src. A zero timeout means DefaultLoadTimeout.
func NewDirectory(src Source, opts Options, timeout time.Duration) *Directory {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Directory{src: src, opts: opts, timeout: timeout}
}

// Loaded reports whether the entities are cached.
func (d *Directory) Loaded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// Entities returns the cached entities, nil when not loaded.
func (d *Directory) Entities() []Entity {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.entities
}

// Reset forgets the cached entities, the next Load fetches the source again.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loaded, d.entities = false, nil
}

// Load returns the normalized entities, fetching the source on first call.
//
// Any failure, including an empty result, is a *LoadError and leaves the directory
// not loaded.
func (d *Directory) Load(ctx context.Context) ([]Entity, error) {
	d.mu.Lock()
	if d.loaded {
		defer d.mu.Unlock()
		return d.entities, nil
	}
	d.mu.Unlock()

	entities, err := d.fetch(ctx)
	if err != nil {
		log.Debug("directory load failed", "err", err)
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		// a concurrent Load won the race, keep its result.
		return d.entities, nil
	}
	d.loaded, d.entities = true, entities
	log.Debugf("directory loaded: %d entities (dedup by %v)", len(entities), d.opts.Dedup)
	return entities, nil
}

func (d *Directory) fetch(ctx context.Context) ([]Entity, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	records, err := d.src.Records(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timeout after %v: %w", d.timeout, err)
		}
		return nil, &LoadError{Msg: loadFailedMsg, Err: err}
	}
	entities := Normalize(records, d.opts)
	if len(entities) == 0 {
		return nil, &LoadError{Msg: loadFailedMsg, Err: fmt.Errorf("no usable entry among %d records", len(records))}
	}
	return entities, nil
}
