// Package store holds the application state: users, learning resources, enrollments and UI flags.
// Every mutation goes through a Store method that commits a complete replacement State.
package store

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// DefaultFallbackOwnerID owns resources created or copied while nobody is signed in.
const DefaultFallbackOwnerID = "user-1"

// Observer is notified once per operation, after it was committed or rejected. Calls happen while
// the store lock is held, in commit order; an Observer must not call back into the Store.
type Observer interface {
	Observe(op string, version uint64, err error)
}

// Listener receives every committed state. Listeners run outside the store lock and may read the
// Store, but concurrent commits can reach a listener out of order; order by State.Version.
type Listener func(State)

type subscriber struct {
	id int
	fn Listener
}

// Store is the single owner of the application state. It is safe for concurrent use; operations are
// serialized and each one observes the state committed by the previous one.
type Store struct {
	mu    sync.Mutex
	state State

	clock           func() time.Time
	newID           func(prefix string) string
	logger          *logrus.Logger
	observer        Observer
	fallbackOwnerID string

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator overrides how fresh entity ids are produced. prefix names the entity kind.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for operation tracing.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an operation observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// WithFallbackOwner sets the owner id used when nobody is signed in.
func WithFallbackOwner(id string) Option {
	return func(s *Store) {
		if id != "" {
			s.fallbackOwnerID = id
		}
	}
}

// New builds a store seeded with snap. The snapshot is copied; later changes to it are not observed.
func New(snap *entity.Snapshot, opts ...Option) *Store {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Store{
		clock:           time.Now,
		newID:           uuidID,
		logger:          discard,
		fallbackOwnerID: DefaultFallbackOwnerID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = newState(snap)
	return s
}

func uuidID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// Snapshot returns the committed state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version returns the number of committed mutations.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Version
}

// Subscribe registers fn to be called after every committed mutation. The returned func unsubscribes.
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// update runs fn against a shallow copy of the committed state. fn must replace, never modify, any
// slice or map it changes. On success the derived counters are reconciled, the version is bumped and
// the result is committed; on error nothing changes.
func (s *Store) update(op string, fn func(next *State, now time.Time) error) (State, error) {
	s.mu.Lock()
	next := s.state
	err := fn(&next, s.clock().UTC())
	if err != nil {
		s.observe(op, s.state.Version, err)
		s.mu.Unlock()
		return State{}, err
	}
	reconcile(&next)
	next.Version = s.state.Version + 1
	s.state = next
	s.observe(op, next.Version, nil)
	s.mu.Unlock()

	s.notify(next)
	return next, nil
}

// observe runs with s.mu held so the observer sees outcomes in commit order.
func (s *Store) observe(op string, version uint64, err error) {
	entry := s.logger.WithFields(logrus.Fields{"op": op, "version": version})
	if err != nil {
		entry.WithError(err).Debug("store operation rejected")
	} else {
		entry.Debug("store operation committed")
	}
	if s.observer != nil {
		s.observer.Observe(op, version, err)
	}
}

func (s *Store) notify(st State) {
	s.subMu.Lock()
	subs := append([]subscriber(nil), s.subs...)
	s.subMu.Unlock()
	for _, sub := range subs {
		sub.fn(st)
	}
}

func (s *Store) ownerID(st *State) string {
	if st.CurrentUser != nil {
		return st.CurrentUser.ID
	}
	return s.fallbackOwnerID
}

// reconcile recomputes every derived value in next, copying a collection only when something changed.
func reconcile(next *State) {
	if dictionariesDrifted(next) {
		dicts := make([]entity.Dictionary, len(next.Dictionaries))
		for i, d := range next.Dictionaries {
			d.EntryCount = len(next.DictionaryEntries[d.ID])
			d.FavoriteCount = max(d.FavoriteCount, 0)
			d.CopyCount = max(d.CopyCount, 0)
			dicts[i] = d
		}
		next.Dictionaries = dicts
	}
	if grammarsDrifted(next) {
		grammars := make([]entity.Grammar, len(next.Grammars))
		for i, g := range next.Grammars {
			g.RuleCount = len(next.GrammarRules[g.ID])
			g.FavoriteCount = max(g.FavoriteCount, 0)
			g.CopyCount = max(g.CopyCount, 0)
			grammars[i] = g
		}
		next.Grammars = grammars
	}
	if roadmapsDrifted(next) {
		roadmaps := make([]entity.Roadmap, len(next.Roadmaps))
		for i, r := range next.Roadmaps {
			r.EnrollmentCount = max(r.EnrollmentCount, 0)
			r.FavoriteCount = max(r.FavoriteCount, 0)
			r.CopyCount = max(r.CopyCount, 0)
			roadmaps[i] = r
		}
		next.Roadmaps = roadmaps
	}
	if progressDrifted(next) {
		progress := make([]entity.UserProgress, len(next.Progress))
		for i, p := range next.Progress {
			progress[i] = reconcileProgress(next, p)
		}
		next.Progress = progress
	}
}

func dictionariesDrifted(st *State) bool {
	for _, d := range st.Dictionaries {
		if d.EntryCount != len(st.DictionaryEntries[d.ID]) || d.FavoriteCount < 0 || d.CopyCount < 0 {
			return true
		}
	}
	return false
}

func grammarsDrifted(st *State) bool {
	for _, g := range st.Grammars {
		if g.RuleCount != len(st.GrammarRules[g.ID]) || g.FavoriteCount < 0 || g.CopyCount < 0 {
			return true
		}
	}
	return false
}

func roadmapsDrifted(st *State) bool {
	for _, r := range st.Roadmaps {
		if r.EnrollmentCount < 0 || r.FavoriteCount < 0 || r.CopyCount < 0 {
			return true
		}
	}
	return false
}

func progressDrifted(st *State) bool {
	for _, p := range st.Progress {
		fixed := reconcileProgress(st, p)
		if fixed.CompletionPercentage != p.CompletionPercentage || fixed.CurrentStep != p.CurrentStep ||
			len(fixed.CompletedSteps) != len(p.CompletedSteps) {
			return true
		}
	}
	return false
}

// reconcileProgress fits p to its roadmap's current steps. Progress of an unknown roadmap keeps its
// completed steps and reports zero percent.
func reconcileProgress(st *State, p entity.UserProgress) entity.UserProgress {
	if i := st.roadmapIndex(p.RoadmapID); i >= 0 {
		return st.Roadmaps[i].ReconcileProgress(p)
	}
	p.CompletionPercentage = 0
	p.CurrentStep = max(p.CurrentStep, 1)
	return p
}
