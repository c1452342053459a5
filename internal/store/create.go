package store

import (
	"strings"
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// CreateDictionary appends a new dictionary owned by the current user (or the fallback owner).
// Id, owner, counters and timestamps of the input are ignored.
func (s *Store) CreateDictionary(in entity.Dictionary) (entity.Dictionary, error) {
	var created entity.Dictionary
	_, err := s.update("create_dictionary", func(next *State, now time.Time) error {
		d := entity.Dictionary{
			ID:             s.newID("dict"),
			Name:           strings.TrimSpace(in.Name),
			Description:    strings.TrimSpace(in.Description),
			SourceLanguage: entity.ParseLanguage(string(in.SourceLanguage)),
			TargetLanguage: entity.ParseLanguage(string(in.TargetLanguage)),
			OwnerID:        s.ownerID(next),
			IsPublic:       in.IsPublic,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if d.Name == "" {
			return entity.ErrInvalidName
		}
		next.Dictionaries = appendTo(next.Dictionaries, d)
		created = d
		return nil
	})
	return created, err
}

// CreateGrammar appends a new grammar owned by the current user (or the fallback owner).
func (s *Store) CreateGrammar(in entity.Grammar) (entity.Grammar, error) {
	var created entity.Grammar
	_, err := s.update("create_grammar", func(next *State, now time.Time) error {
		g := entity.Grammar{
			ID:          s.newID("gram"),
			Name:        strings.TrimSpace(in.Name),
			Description: strings.TrimSpace(in.Description),
			Language:    entity.ParseLanguage(string(in.Language)),
			OwnerID:     s.ownerID(next),
			IsPublic:    in.IsPublic,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if g.Name == "" {
			return entity.ErrInvalidName
		}
		next.Grammars = appendTo(next.Grammars, g)
		created = g
		return nil
	})
	return created, err
}

// CreateRoadmap appends a new roadmap. Steps keep their submitted order, are renumbered 1..N, get
// fresh ids and lose blank objectives.
func (s *Store) CreateRoadmap(in entity.Roadmap) (entity.Roadmap, error) {
	var created entity.Roadmap
	_, err := s.update("create_roadmap", func(next *State, now time.Time) error {
		r := entity.Roadmap{
			ID:                s.newID("roadmap"),
			Name:              strings.TrimSpace(in.Name),
			Description:       strings.TrimSpace(in.Description),
			Language:          entity.ParseLanguage(string(in.Language)),
			Level:             entity.Level(strings.ToLower(strings.TrimSpace(string(in.Level)))),
			EstimatedDuration: strings.TrimSpace(in.EstimatedDuration),
			OwnerID:           s.ownerID(next),
			IsPublic:          in.IsPublic,
			Steps:             make([]entity.RoadmapStep, len(in.Steps)),
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		for i, step := range in.Steps {
			r.Steps[i] = entity.RoadmapStep{
				ID:            s.newID("step"),
				Title:         strings.TrimSpace(step.Title),
				Description:   strings.TrimSpace(step.Description),
				Order:         i + 1,
				Type:          step.Type,
				ResourceID:    strings.TrimSpace(step.ResourceID),
				EstimatedTime: strings.TrimSpace(step.EstimatedTime),
				Objectives:    entity.CompactObjectives(step.Objectives),
			}
		}
		if err := r.Validate(); err != nil {
			return err
		}
		next.Roadmaps = appendTo(next.Roadmaps, r)
		created = r
		return nil
	})
	return created, err
}

// AddDictionaryEntry appends one entry, with fresh ids for it and its definitions and examples.
func (s *Store) AddDictionaryEntry(dictionaryID string, in entity.DictionaryEntry) (entity.DictionaryEntry, error) {
	var created entity.DictionaryEntry
	_, err := s.update("add_dictionary_entry", func(next *State, now time.Time) error {
		i := next.dictionaryIndex(dictionaryID)
		if i < 0 {
			return entity.ErrDictionaryNotFound
		}
		e := in.Clone()
		e.ID = s.newID("entry")
		e.DictionaryID = dictionaryID
		e.CreatedAt, e.UpdatedAt = now, now
		for j := range e.Definitions {
			e.Definitions[j].ID = s.newID("def")
		}
		for j := range e.Examples {
			e.Examples[j].ID = s.newID("ex")
		}
		e.Normalize(now)
		if e.Term == "" {
			return entity.ErrInvalidTerm
		}

		next.DictionaryEntries = withKey(next.DictionaryEntries, dictionaryID, appendTo(next.DictionaryEntries[dictionaryID], e))
		d := next.Dictionaries[i]
		d.UpdatedAt = now
		next.Dictionaries = replaceAt(next.Dictionaries, i, d)
		created = e
		return nil
	})
	return created, err
}

// AddGrammarRule appends one rule, with fresh ids for it and its examples.
func (s *Store) AddGrammarRule(grammarID string, in entity.GrammarRule) (entity.GrammarRule, error) {
	var created entity.GrammarRule
	_, err := s.update("add_grammar_rule", func(next *State, now time.Time) error {
		i := next.grammarIndex(grammarID)
		if i < 0 {
			return entity.ErrGrammarNotFound
		}
		r := in.Clone()
		r.ID = s.newID("rule")
		r.GrammarID = grammarID
		r.CreatedAt, r.UpdatedAt = now, now
		for j := range r.Examples {
			r.Examples[j].ID = s.newID("ex")
		}
		r.Normalize(now)
		if r.Title == "" {
			return entity.ErrInvalidRuleTitle
		}

		next.GrammarRules = withKey(next.GrammarRules, grammarID, appendTo(next.GrammarRules[grammarID], r))
		g := next.Grammars[i]
		g.UpdatedAt = now
		next.Grammars = replaceAt(next.Grammars, i, g)
		created = r
		return nil
	})
	return created, err
}
