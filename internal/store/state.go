package store

import (
	"slices"
	"strings"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// State is one committed version of the application state. A State returned by the store is never
// modified afterwards; callers must treat its slices and maps as read-only.
type State struct {
	Version uint64

	CurrentUser *entity.User
	Users       []entity.User

	Dictionaries      []entity.Dictionary
	DictionaryEntries map[string][]entity.DictionaryEntry
	Grammars          []entity.Grammar
	GrammarRules      map[string][]entity.GrammarRule
	Roadmaps          []entity.Roadmap
	Progress          []entity.UserProgress

	CurrentDictionaryID string
	CurrentGrammarID    string
	CurrentRoadmapID    string

	UI entity.UIState
}

func newState(snap *entity.Snapshot) State {
	if snap == nil {
		snap = entity.EmptySnapshot()
	}
	// The snapshot belongs to the caller; copy before reconciling so it stays untouched.
	own := &entity.Snapshot{
		Users:             slices.Clone(snap.Users),
		Dictionaries:      slices.Clone(snap.Dictionaries),
		DictionaryEntries: make(map[string][]entity.DictionaryEntry, len(snap.DictionaryEntries)),
		Grammars:          slices.Clone(snap.Grammars),
		GrammarRules:      make(map[string][]entity.GrammarRule, len(snap.GrammarRules)),
		Roadmaps:          make([]entity.Roadmap, 0, len(snap.Roadmaps)),
		Progress:          make([]entity.UserProgress, 0, len(snap.Progress)),
	}
	for i := range own.Users {
		own.Users[i] = own.Users[i].Clone()
	}
	for id, entries := range snap.DictionaryEntries {
		cloned := make([]entity.DictionaryEntry, len(entries))
		for i, e := range entries {
			cloned[i] = e.Clone()
		}
		own.DictionaryEntries[id] = cloned
	}
	for id, rules := range snap.GrammarRules {
		cloned := make([]entity.GrammarRule, len(rules))
		for i, r := range rules {
			cloned[i] = r.Clone()
		}
		own.GrammarRules[id] = cloned
	}
	for _, r := range snap.Roadmaps {
		own.Roadmaps = append(own.Roadmaps, r.Clone())
	}
	for _, p := range snap.Progress {
		own.Progress = append(own.Progress, p.Clone())
	}
	own.Reconcile()

	return State{
		Users:             own.Users,
		Dictionaries:      own.Dictionaries,
		DictionaryEntries: own.DictionaryEntries,
		Grammars:          own.Grammars,
		GrammarRules:      own.GrammarRules,
		Roadmaps:          own.Roadmaps,
		Progress:          own.Progress,
		UI:                entity.DefaultUIState(),
	}
}

// Snapshot exports the entity collections of the state.
func (s State) Snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Users:             s.Users,
		Dictionaries:      s.Dictionaries,
		DictionaryEntries: s.DictionaryEntries,
		Grammars:          s.Grammars,
		GrammarRules:      s.GrammarRules,
		Roadmaps:          s.Roadmaps,
		Progress:          s.Progress,
	}
}

// User looks up a user by id.
func (s State) User(id string) (entity.User, bool) {
	i := slices.IndexFunc(s.Users, func(u entity.User) bool { return u.ID == id })
	if i < 0 {
		return entity.User{}, false
	}
	return s.Users[i], true
}

// Dictionary looks up a dictionary by id.
func (s State) Dictionary(id string) (entity.Dictionary, bool) {
	i := s.dictionaryIndex(id)
	if i < 0 {
		return entity.Dictionary{}, false
	}
	return s.Dictionaries[i], true
}

// Entries returns the entries of one dictionary.
func (s State) Entries(dictionaryID string) []entity.DictionaryEntry {
	return s.DictionaryEntries[dictionaryID]
}

// Grammar looks up a grammar by id.
func (s State) Grammar(id string) (entity.Grammar, bool) {
	i := s.grammarIndex(id)
	if i < 0 {
		return entity.Grammar{}, false
	}
	return s.Grammars[i], true
}

// Rules returns the rules of one grammar.
func (s State) Rules(grammarID string) []entity.GrammarRule {
	return s.GrammarRules[grammarID]
}

// Roadmap looks up a roadmap by id.
func (s State) Roadmap(id string) (entity.Roadmap, bool) {
	i := s.roadmapIndex(id)
	if i < 0 {
		return entity.Roadmap{}, false
	}
	return s.Roadmaps[i], true
}

// ProgressFor returns the enrollment of userID in roadmapID.
func (s State) ProgressFor(userID, roadmapID string) (entity.UserProgress, bool) {
	i := s.progressIndex(userID, roadmapID)
	if i < 0 {
		return entity.UserProgress{}, false
	}
	return s.Progress[i], true
}

// SearchUsers matches query case-insensitively against name or email. A blank query returns every user.
func (s State) SearchUsers(query string) []entity.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Users
	}
	var out []entity.User
	for _, u := range s.Users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

func (s State) dictionaryIndex(id string) int {
	return slices.IndexFunc(s.Dictionaries, func(d entity.Dictionary) bool { return d.ID == id })
}

func (s State) grammarIndex(id string) int {
	return slices.IndexFunc(s.Grammars, func(g entity.Grammar) bool { return g.ID == id })
}

func (s State) roadmapIndex(id string) int {
	return slices.IndexFunc(s.Roadmaps, func(r entity.Roadmap) bool { return r.ID == id })
}

func (s State) progressIndex(userID, roadmapID string) int {
	return slices.IndexFunc(s.Progress, func(p entity.UserProgress) bool { return p.Matches(userID, roadmapID) })
}

func (s State) userIndex(id string) int {
	return slices.IndexFunc(s.Users, func(u entity.User) bool { return u.ID == id })
}
