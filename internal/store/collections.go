package store

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// SetDictionaries replaces the dictionary collection. Entries of dictionaries no longer present are
// dropped in the same commit and EntryCount is recomputed from the remaining entries.
func (s *Store) SetDictionaries(items []entity.Dictionary) error {
	_, err := s.update("set_dictionaries", func(next *State, _ time.Time) error {
		if err := uniqueIDs(items, func(d entity.Dictionary) string { return d.ID }); err != nil {
			return err
		}
		ids := lo.SliceToMap(items, func(d entity.Dictionary) (string, struct{}) { return d.ID, struct{}{} })
		next.Dictionaries = append([]entity.Dictionary{}, items...)
		next.DictionaryEntries = keepKeys(next.DictionaryEntries, func(id string) bool {
			_, ok := ids[id]
			return ok
		})
		if _, ok := ids[next.CurrentDictionaryID]; !ok {
			next.CurrentDictionaryID = ""
		}
		return nil
	})
	return err
}

// SetGrammars replaces the grammar collection, dropping rules of removed grammars.
func (s *Store) SetGrammars(items []entity.Grammar) error {
	_, err := s.update("set_grammars", func(next *State, _ time.Time) error {
		if err := uniqueIDs(items, func(g entity.Grammar) string { return g.ID }); err != nil {
			return err
		}
		ids := lo.SliceToMap(items, func(g entity.Grammar) (string, struct{}) { return g.ID, struct{}{} })
		next.Grammars = append([]entity.Grammar{}, items...)
		next.GrammarRules = keepKeys(next.GrammarRules, func(id string) bool {
			_, ok := ids[id]
			return ok
		})
		if _, ok := ids[next.CurrentGrammarID]; !ok {
			next.CurrentGrammarID = ""
		}
		return nil
	})
	return err
}

// SetRoadmaps replaces the roadmap collection, dropping enrollments in removed roadmaps. Steps are
// sorted by order and must then be numbered 1..N; every roadmap must pass Roadmap.Validate.
// Completed steps that no longer exist are dropped and percentages follow the new step counts.
func (s *Store) SetRoadmaps(items []entity.Roadmap) error {
	_, err := s.update("set_roadmaps", func(next *State, _ time.Time) error {
		if err := uniqueIDs(items, func(r entity.Roadmap) string { return r.ID }); err != nil {
			return err
		}
		roadmaps := make([]entity.Roadmap, len(items))
		for i, r := range items {
			r = r.Clone()
			if r.Steps == nil {
				r.Steps = []entity.RoadmapStep{}
			}
			r.SortSteps()
			if err := r.Validate(); err != nil {
				return fmt.Errorf("roadmap %s: %w", r.ID, err)
			}
			roadmaps[i] = r
		}
		ids := lo.SliceToMap(roadmaps, func(r entity.Roadmap) (string, struct{}) { return r.ID, struct{}{} })
		next.Roadmaps = roadmaps
		next.Progress = lo.Filter(next.Progress, func(p entity.UserProgress, _ int) bool {
			_, ok := ids[p.RoadmapID]
			return ok
		})
		if _, ok := ids[next.CurrentRoadmapID]; !ok {
			next.CurrentRoadmapID = ""
		}
		return nil
	})
	return err
}

// SetDictionaryEntries replaces the entries of one dictionary. Other dictionaries are untouched.
func (s *Store) SetDictionaryEntries(dictionaryID string, entries []entity.DictionaryEntry) error {
	_, err := s.update("set_dictionary_entries", func(next *State, now time.Time) error {
		if next.dictionaryIndex(dictionaryID) < 0 {
			return entity.ErrDictionaryNotFound
		}
		if err := uniqueIDs(entries, func(e entity.DictionaryEntry) string { return e.ID }); err != nil {
			return err
		}
		list := make([]entity.DictionaryEntry, len(entries))
		for i, e := range entries {
			e = e.Clone()
			e.DictionaryID = dictionaryID
			e.Normalize(now)
			list[i] = e
		}
		next.DictionaryEntries = withKey(next.DictionaryEntries, dictionaryID, list)
		return nil
	})
	return err
}

// SetGrammarRules replaces the rules of one grammar. Other grammars are untouched.
func (s *Store) SetGrammarRules(grammarID string, rules []entity.GrammarRule) error {
	_, err := s.update("set_grammar_rules", func(next *State, now time.Time) error {
		if next.grammarIndex(grammarID) < 0 {
			return entity.ErrGrammarNotFound
		}
		if err := uniqueIDs(rules, func(r entity.GrammarRule) string { return r.ID }); err != nil {
			return err
		}
		list := make([]entity.GrammarRule, len(rules))
		for i, r := range rules {
			r = r.Clone()
			r.GrammarID = grammarID
			r.Normalize(now)
			list[i] = r
		}
		next.GrammarRules = withKey(next.GrammarRules, grammarID, list)
		return nil
	})
	return err
}

func uniqueIDs[T any](items []T, id func(T) string) error {
	if lo.ContainsBy(items, func(item T) bool { return id(item) == "" }) {
		return entity.ErrInvalidID
	}
	if len(lo.FindDuplicatesBy(items, id)) > 0 {
		return entity.ErrDuplicateID
	}
	return nil
}
