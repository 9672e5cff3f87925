package cambio

import (
	"context"
	"sync"
)

// State is the lifecycle state of a Selector.
type State int

const (
	Closed  State = iota // not shown
	Idle                 // shown, directory not requested yet
	Loading              // directory fetch in flight
	Ready                // directory loaded, visible list up to date
	Failed               // directory load failed, Retry is available
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Selector holds the state of a country picker: the search query, the visible entities
// and the load status. Picking an entity hands it to the selection callback and closes
// the picker.
//
// A Selector is safe for concurrent use; the callbacks are invoked without holding its lock.
type Selector struct {
	dir      *Directory
	onSelect func(Entity)

	// OnClose, if set, is called every time the selector closes.
	OnClose func()

	mu      sync.Mutex
	state   State
	gen     int // activation counter, a load finishing in another activation is dropped
	all     []Entity
	query   string
	visible []Entity
	err     error
}

// NewSelector returns a closed selector over dir. onSelect receives every picked entity.
func NewSelector(dir *Directory, onSelect func(Entity)) *Selector {
	return &Selector{dir: dir, onSelect: onSelect}
}

// Show makes the selector visible without loading the directory. The first non-blank
// Search triggers the load.
func (s *Selector) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Closed {
		return
	}
	s.activate()
}

// Open makes the selector visible and loads the directory.
// It returns the load error, if any; the selector is then Failed.
func (s *Selector) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.state == Closed {
		s.activate()
	}
	s.mu.Unlock()
	return s.load(ctx)
}

// activate starts a new activation with a fresh search state. s.mu must be held.
func (s *Selector) activate() {
	s.gen++
	s.state = Idle
	s.query, s.visible, s.err = "", nil, nil
}

// load fetches the directory unless a load is already in flight or done.
func (s *Selector) load(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case Closed, Loading, Ready:
		s.mu.Unlock()
		return nil
	}
	gen := s.gen
	s.state, s.err = Loading, nil
	s.mu.Unlock()

	entities, err := s.dir.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// closed (and maybe reopened) while loading: that result belongs to nobody.
		return nil
	}
	if err != nil {
		s.state, s.err = Failed, err
		return err
	}
	s.state, s.all = Ready, entities
	s.visible = Filter(s.all, s.query)
	return nil
}

// Retry reloads the directory from scratch after a failure.
func (s *Selector) Retry(ctx context.Context) error {
	s.mu.Lock()
	if s.state != Failed {
		s.mu.Unlock()
		return nil
	}
	s.state = Idle
	s.mu.Unlock()
	s.dir.Reset()
	return s.load(ctx)
}

// Search sets the query and returns the visible entities.
//
// On an Idle selector a non-blank query triggers the directory load; its error is returned.
// Before the directory is loaded the visible list is empty.
func (s *Selector) Search(ctx context.Context, query string) ([]Entity, error) {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		return nil, nil
	}
	s.query = query
	s.visible = Filter(s.all, query)
	trigger := s.state == Idle && fold(query) != ""
	s.mu.Unlock()

	if trigger {
		if err := s.load(ctx); err != nil {
			return nil, err
		}
	}
	return s.Visible(), nil
}

// Select hands e to the selection callback, clears the search and closes the selector.
// Any entity is accepted.
func (s *Selector) Select(e Entity) {
	s.mu.Lock()
	s.reset()
	onSelect, onClose := s.onSelect, s.OnClose
	s.mu.Unlock()

	if onSelect != nil {
		onSelect(e)
	}
	if onClose != nil {
		onClose()
	}
}

// Close hides the selector and discards its search state.
func (s *Selector) Close() {
	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		return
	}
	s.reset()
	onClose := s.OnClose
	s.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// reset closes the selector. s.mu must be held.
func (s *Selector) reset() {
	s.gen++
	s.state = Closed
	s.query, s.visible, s.err = "", nil, nil
}

// State returns the current lifecycle state.
func (s *Selector) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Query returns the current search query.
func (s *Selector) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Visible returns a copy of the entities matching the current query.
func (s *Selector) Visible() []Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entity(nil), s.visible...)
}

// Err returns the last load error, nil unless the selector is Failed.
func (s *Selector) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Total returns the number of entities in the loaded directory.
func (s *Selector) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.all)
}
