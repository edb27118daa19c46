// Package settings holds the process-wide accessibility options: font
// scale, high-contrast palette and text-to-speech. Nothing here is
// persisted; the store lives and dies with the process.
package settings

import "sync"

const (
	DefaultFontScale = 1.0
	MinFontScale     = 0.9
	MaxFontScale     = 1.6
)

// Snapshot is an immutable copy of the three values.
type Snapshot struct {
	FontScale    float64 `json:"font_scale"`
	HighContrast bool    `json:"high_contrast"`
	TTSEnabled   bool    `json:"tts_enabled"`
}

// Store is an observable value cell: every Set notifies all subscribers
// with the new snapshot. The store itself does not clamp the font scale;
// range enforcement belongs to the edit surface.
type Store struct {
	mu   sync.Mutex
	cur  Snapshot
	subs map[chan Snapshot]struct{}
}

func NewStore() *Store {
	return &Store{
		cur:  Snapshot{FontScale: DefaultFontScale},
		subs: map[chan Snapshot]struct{}{},
	}
}

func (s *Store) Get() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Store) SetFontScale(v float64) {
	s.mu.Lock()
	s.cur.FontScale = v
	s.broadcast()
	s.mu.Unlock()
}

func (s *Store) SetHighContrast(v bool) {
	s.mu.Lock()
	s.cur.HighContrast = v
	s.broadcast()
	s.mu.Unlock()
}

func (s *Store) SetTTSEnabled(v bool) {
	s.mu.Lock()
	s.cur.TTSEnabled = v
	s.broadcast()
	s.mu.Unlock()
}

// Subscribe returns a channel receiving a snapshot after each change.
// Slow subscribers miss intermediate snapshots, never the latest.
func (s *Store) Subscribe() chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Store) Unsubscribe(ch chan Snapshot) {
	s.mu.Lock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
	s.mu.Unlock()
}

// caller holds s.mu
func (s *Store) broadcast() {
	for ch := range s.subs {
		select {
		case ch <- s.cur:
		default:
			// drop the stale snapshot, replace with the current one
			select {
			case <-ch:
			default:
			}
			ch <- s.cur
		}
	}
}

// ScaledSize rounds base times scale, the helper every text surface uses.
func ScaledSize(base int, scale float64) int {
	return int(float64(base)*scale + 0.5)
}
