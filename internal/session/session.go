// Package session holds the named signals of one visualizer workspace and
// runs the numeric engines over them. The CLI and the WebAssembly bridge
// share this type.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-dsp-viz/internal/store"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const defaultCacheTTL = 5 * time.Minute

var (
	// ErrUnknownSignal is returned when a named signal does not exist.
	ErrUnknownSignal = errors.New("session: unknown signal")
	// ErrNoStorage is returned by Save and Load on a session without storage.
	ErrNoStorage = errors.New("session: no storage configured")
)

// Config configures a Session.
type Config struct {
	// Storage persists signals for Save and Load. Optional.
	Storage *store.Storage
	// CacheTTL is the lifetime of cached engine results. Zero selects 5 minutes.
	CacheTTL time.Duration
	// Options configure precision and seed of every signal the session creates.
	Options []core.Option
}

// Session is a set of named signals guarded by a mutex.
type Session struct {
	sync.Mutex

	logger  *log.Entry
	cfg     core.Config
	storage *store.Storage
	rng     *rand.Rand
	results *cache.Cache

	signals map[string]*signal.Signal
}

// New returns an empty session.
func New(logger *log.Entry, config Config) *Session {
	ttl := config.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	cfg := core.ApplyOptions(config.Options...)

	return &Session{
		logger:  logger,
		cfg:     cfg,
		storage: config.Storage,
		rng:     core.NewRand(cfg.Seed),
		results: cache.New(ttl, 2*ttl),
		signals: make(map[string]*signal.Signal),
	}
}

func (s *Session) newSignal() *signal.Signal {
	return signal.New(core.WithConfig(s.cfg))
}

// lookup returns the named signal. The caller holds the lock.
func (s *Session) lookup(name string) (*signal.Signal, error) {
	sig, ok := s.signals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
	}
	return sig, nil
}

// Names lists the signal names in sorted order.
func (s *Session) Names() []string {
	s.Lock()
	defer s.Unlock()

	names := make([]string, 0, len(s.signals))
	for name := range s.signals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Points returns a copy of the named signal's points.
func (s *Session) Points(name string, opts ...signal.ReadOption) ([]signal.Point, error) {
	s.Lock()
	defer s.Unlock()

	sig, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return sig.Values(opts...), nil
}

// Signal returns a clone of the named signal.
func (s *Session) Signal(name string) (*signal.Signal, error) {
	s.Lock()
	defer s.Unlock()

	sig, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return sig.Clone(), nil
}

// SetPoints replaces the named signal with points, creating it if needed.
func (s *Session) SetPoints(name string, points []signal.Point) {
	s.Lock()
	defer s.Unlock()

	sig, ok := s.signals[name]
	if !ok {
		sig = s.newSignal()
		s.signals[name] = sig
	}
	sig.SetValues(points)
	s.logger.WithFields(log.Fields{"signal": name, "points": sig.Len()}).Debug("points set")
}

// SetPoint overwrites or inserts one point of the named signal.
func (s *Session) SetPoint(name string, x, y float64) error {
	s.Lock()
	defer s.Unlock()

	sig, err := s.lookup(name)
	if err != nil {
		return err
	}
	sig.SetPoint(x, y)
	return nil
}

// RemovePoint deletes one point of the named signal.
func (s *Session) RemovePoint(name string, x float64) (bool, error) {
	s.Lock()
	defer s.Unlock()

	sig, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	return sig.RemovePoint(x), nil
}

// SetTimeOffset sets the read-time offset of the named signal.
func (s *Session) SetTimeOffset(name string, offset float64) error {
	s.Lock()
	defer s.Unlock()

	sig, err := s.lookup(name)
	if err != nil {
		return err
	}
	sig.SetTimeOffset(offset)
	return nil
}

// Delete removes the named signal and reports whether it existed.
func (s *Session) Delete(name string) bool {
	s.Lock()
	defer s.Unlock()

	_, ok := s.signals[name]
	delete(s.signals, name)
	return ok
}

// Generate fills the named signal from a preset generator.
func (s *Session) Generate(name string, preset signal.PresetConfig, xMin, xMax, step float64) error {
	fn, err := signal.Preset(preset)
	if err != nil {
		return fmt.Errorf("session: generate %q: %w", name, err)
	}

	sig := s.newSignal()
	if err := sig.GenerateValues(xMin, xMax, step, fn); err != nil {
		return fmt.Errorf("session: generate %q: %w", name, err)
	}

	s.Lock()
	s.signals[name] = sig
	s.Unlock()

	s.logger.WithFields(log.Fields{
		"signal": name,
		"preset": preset.Name,
		"points": sig.Len(),
	}).Info("signal generated")
	return nil
}

// Save writes the named signal to storage under its name.
func (s *Session) Save(name string) error {
	if s.storage == nil {
		return ErrNoStorage
	}

	sig, err := s.Signal(name)
	if err != nil {
		return err
	}
	if err := s.storage.Save(name, sig); err != nil {
		return err
	}

	s.logger.WithField("signal", name).Info("signal saved")
	return nil
}

// Load reads the named signal from storage, replacing any signal in memory.
func (s *Session) Load(name string) error {
	if s.storage == nil {
		return ErrNoStorage
	}

	sig, err := s.storage.Load(name)
	if err != nil {
		return err
	}

	s.Lock()
	s.signals[name] = sig
	s.Unlock()

	s.logger.WithFields(log.Fields{"signal": name, "points": sig.Len()}).Info("signal loaded")
	return nil
}
