package entity

// Snapshot is the full set of entity collections handed to a store at startup or written by an export.
type Snapshot struct {
	Users             []User                       `json:"users" yaml:"users"`
	Dictionaries      []Dictionary                 `json:"dictionaries" yaml:"dictionaries"`
	DictionaryEntries map[string][]DictionaryEntry `json:"dictionary_entries" yaml:"dictionary_entries"`
	Grammars          []Grammar                    `json:"grammars" yaml:"grammars"`
	GrammarRules      map[string][]GrammarRule     `json:"grammar_rules" yaml:"grammar_rules"`
	Roadmaps          []Roadmap                    `json:"roadmaps" yaml:"roadmaps"`
	Progress          []UserProgress               `json:"progress" yaml:"progress"`
}

// EmptySnapshot returns a snapshot with every collection allocated.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Users:             []User{},
		Dictionaries:      []Dictionary{},
		DictionaryEntries: map[string][]DictionaryEntry{},
		Grammars:          []Grammar{},
		GrammarRules:      map[string][]GrammarRule{},
		Roadmaps:          []Roadmap{},
		Progress:          []UserProgress{},
	}
}

// Reconcile fills nil collections, forces child parent ids, sorts steps and recomputes every derived
// counter (entry/rule counts, completion percentages, current step bounds).
func (s *Snapshot) Reconcile() {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Dictionaries == nil {
		s.Dictionaries = []Dictionary{}
	}
	if s.DictionaryEntries == nil {
		s.DictionaryEntries = map[string][]DictionaryEntry{}
	}
	if s.Grammars == nil {
		s.Grammars = []Grammar{}
	}
	if s.GrammarRules == nil {
		s.GrammarRules = map[string][]GrammarRule{}
	}
	if s.Roadmaps == nil {
		s.Roadmaps = []Roadmap{}
	}
	if s.Progress == nil {
		s.Progress = []UserProgress{}
	}

	for i := range s.Users {
		s.Users[i].Normalize()
	}
	for dictID, entries := range s.DictionaryEntries {
		for i := range entries {
			entries[i].DictionaryID = dictID
		}
	}
	for i := range s.Dictionaries {
		s.Dictionaries[i].EntryCount = len(s.DictionaryEntries[s.Dictionaries[i].ID])
		s.Dictionaries[i].FavoriteCount = max(s.Dictionaries[i].FavoriteCount, 0)
		s.Dictionaries[i].CopyCount = max(s.Dictionaries[i].CopyCount, 0)
	}
	for grammarID, rules := range s.GrammarRules {
		for i := range rules {
			rules[i].GrammarID = grammarID
		}
	}
	for i := range s.Grammars {
		s.Grammars[i].RuleCount = len(s.GrammarRules[s.Grammars[i].ID])
		s.Grammars[i].FavoriteCount = max(s.Grammars[i].FavoriteCount, 0)
		s.Grammars[i].CopyCount = max(s.Grammars[i].CopyCount, 0)
	}

	roadmaps := make(map[string]*Roadmap, len(s.Roadmaps))
	for i := range s.Roadmaps {
		r := &s.Roadmaps[i]
		if r.Steps == nil {
			r.Steps = []RoadmapStep{}
		}
		r.SortSteps()
		r.EnrollmentCount = max(r.EnrollmentCount, 0)
		r.FavoriteCount = max(r.FavoriteCount, 0)
		r.CopyCount = max(r.CopyCount, 0)
		roadmaps[r.ID] = r
	}
	for i := range s.Progress {
		p := &s.Progress[i]
		if p.CompletedSteps == nil {
			p.CompletedSteps = []string{}
		}
		if r, ok := roadmaps[p.RoadmapID]; ok {
			*p = r.ReconcileProgress(*p)
			continue
		}
		p.CompletionPercentage = 0
		p.CurrentStep = max(p.CurrentStep, 1)
	}
}

// CountEntries returns the number of entries across all dictionaries.
func (s *Snapshot) CountEntries() int {
	n := 0
	for _, entries := range s.DictionaryEntries {
		n += len(entries)
	}
	return n
}

// CountRules returns the number of rules across all grammars.
func (s *Snapshot) CountRules() int {
	n := 0
	for _, rules := range s.GrammarRules {
		n += len(rules)
	}
	return n
}
