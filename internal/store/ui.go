package store

import (
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// SetCurrentDictionary selects the dictionary being viewed. An empty id clears the selection.
func (s *Store) SetCurrentDictionary(id string) error {
	_, err := s.update("set_current_dictionary", func(next *State, _ time.Time) error {
		if id != "" && next.dictionaryIndex(id) < 0 {
			return entity.ErrDictionaryNotFound
		}
		next.CurrentDictionaryID = id
		return nil
	})
	return err
}

// SetCurrentGrammar selects the grammar being viewed.
func (s *Store) SetCurrentGrammar(id string) error {
	_, err := s.update("set_current_grammar", func(next *State, _ time.Time) error {
		if id != "" && next.grammarIndex(id) < 0 {
			return entity.ErrGrammarNotFound
		}
		next.CurrentGrammarID = id
		return nil
	})
	return err
}

// SetCurrentRoadmap selects the roadmap being viewed.
func (s *Store) SetCurrentRoadmap(id string) error {
	_, err := s.update("set_current_roadmap", func(next *State, _ time.Time) error {
		if id != "" && next.roadmapIndex(id) < 0 {
			return entity.ErrRoadmapNotFound
		}
		next.CurrentRoadmapID = id
		return nil
	})
	return err
}

// ToggleSidebar flips the sidebar flag and returns the new value.
func (s *Store) ToggleSidebar() bool {
	st, _ := s.update("toggle_sidebar", func(next *State, _ time.Time) error {
		next.UI.SidebarOpen = !next.UI.SidebarOpen
		return nil
	})
	return st.UI.SidebarOpen
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	st, _ := s.update("toggle_dark_mode", func(next *State, _ time.Time) error {
		next.UI.DarkMode = !next.UI.DarkMode
		return nil
	})
	return st.UI.DarkMode
}

// SetEntriesViewMode switches between row and card layout.
func (s *Store) SetEntriesViewMode(mode entity.ViewMode) error {
	_, err := s.update("set_entries_view_mode", func(next *State, _ time.Time) error {
		parsed, err := entity.ParseViewMode(string(mode))
		if err != nil {
			return err
		}
		next.UI.EntriesViewMode = parsed
		return nil
	})
	return err
}

// SetSearchFilters merges patch into the explore filters and returns the result.
func (s *Store) SetSearchFilters(patch entity.SearchFiltersPatch) entity.SearchFilters {
	st, _ := s.update("set_search_filters", func(next *State, _ time.Time) error {
		next.UI.SearchFilters = patch.Apply(next.UI.SearchFilters)
		return nil
	})
	return st.UI.SearchFilters.Clone()
}
