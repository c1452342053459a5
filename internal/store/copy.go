package store

import (
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
)

const copySuffix = " (Copy)"

// CopyDictionary duplicates a dictionary and its entries under a fresh id owned by the current user
// (or the fallback owner). The source only gains one CopyCount.
func (s *Store) CopyDictionary(sourceID string) (entity.Dictionary, error) {
	var created entity.Dictionary
	_, err := s.update("copy_dictionary", func(next *State, now time.Time) error {
		i := next.dictionaryIndex(sourceID)
		if i < 0 {
			return entity.ErrDictionaryNotFound
		}
		src := next.Dictionaries[i]

		d := src
		d.ID = s.newID("dict")
		d.Name = src.Name + copySuffix
		d.OwnerID = s.ownerID(next)
		d.FavoriteCount, d.CopyCount = 0, 0
		d.CreatedAt, d.UpdatedAt = now, now

		sourceEntries := next.DictionaryEntries[sourceID]
		entries := make([]entity.DictionaryEntry, len(sourceEntries))
		for j, e := range sourceEntries {
			e = e.Clone()
			e.ID = s.newID("entry")
			e.DictionaryID = d.ID
			for k := range e.Definitions {
				e.Definitions[k].ID = s.newID("def")
			}
			for k := range e.Examples {
				e.Examples[k].ID = s.newID("ex")
			}
			e.CreatedAt, e.UpdatedAt = now, now
			entries[j] = e
		}

		src.CopyCount++
		next.Dictionaries = appendTo(replaceAt(next.Dictionaries, i, src), d)
		next.DictionaryEntries = withKey(next.DictionaryEntries, d.ID, entries)
		d.EntryCount = len(entries)
		created = d
		return nil
	})
	return created, err
}

// CopyGrammar duplicates a grammar and its rules.
func (s *Store) CopyGrammar(sourceID string) (entity.Grammar, error) {
	var created entity.Grammar
	_, err := s.update("copy_grammar", func(next *State, now time.Time) error {
		i := next.grammarIndex(sourceID)
		if i < 0 {
			return entity.ErrGrammarNotFound
		}
		src := next.Grammars[i]

		g := src
		g.ID = s.newID("gram")
		g.Name = src.Name + copySuffix
		g.OwnerID = s.ownerID(next)
		g.FavoriteCount, g.CopyCount = 0, 0
		g.CreatedAt, g.UpdatedAt = now, now

		sourceRules := next.GrammarRules[sourceID]
		rules := make([]entity.GrammarRule, len(sourceRules))
		for j, r := range sourceRules {
			r = r.Clone()
			r.ID = s.newID("rule")
			r.GrammarID = g.ID
			for k := range r.Examples {
				r.Examples[k].ID = s.newID("ex")
			}
			r.CreatedAt, r.UpdatedAt = now, now
			rules[j] = r
		}

		src.CopyCount++
		next.Grammars = appendTo(replaceAt(next.Grammars, i, src), g)
		next.GrammarRules = withKey(next.GrammarRules, g.ID, rules)
		g.RuleCount = len(rules)
		created = g
		return nil
	})
	return created, err
}

// CopyRoadmap duplicates a roadmap with fresh step ids. Enrollment, favorite and copy counts of the
// copy start at zero.
func (s *Store) CopyRoadmap(sourceID string) (entity.Roadmap, error) {
	var created entity.Roadmap
	_, err := s.update("copy_roadmap", func(next *State, now time.Time) error {
		i := next.roadmapIndex(sourceID)
		if i < 0 {
			return entity.ErrRoadmapNotFound
		}
		src := next.Roadmaps[i]

		r := src.Clone()
		r.ID = s.newID("roadmap")
		r.Name = src.Name + copySuffix
		r.OwnerID = s.ownerID(next)
		r.EnrollmentCount, r.FavoriteCount, r.CopyCount = 0, 0, 0
		r.CreatedAt, r.UpdatedAt = now, now
		for j := range r.Steps {
			r.Steps[j].ID = s.newID("step")
		}

		src.CopyCount++
		next.Roadmaps = appendTo(replaceAt(next.Roadmaps, i, src), r)
		created = r
		return nil
	})
	return created, err
}
