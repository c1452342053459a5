package store

import (
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// ToggleFavoriteDictionary adds or removes dictionaryID from the current user's favorites and moves
// the dictionary's FavoriteCount the same way. It reports whether the dictionary is now a favorite.
func (s *Store) ToggleFavoriteDictionary(dictionaryID string) (bool, error) {
	var favorited bool
	_, err := s.update("toggle_favorite_dictionary", func(next *State, _ time.Time) error {
		if next.CurrentUser == nil {
			return entity.ErrNotAuthenticated
		}
		i := next.dictionaryIndex(dictionaryID)
		if i < 0 {
			return entity.ErrDictionaryNotFound
		}
		u := next.CurrentUser.Clone()
		u.Favorites.Dictionaries, favorited = toggle(u.Favorites.Dictionaries, dictionaryID)

		d := next.Dictionaries[i]
		d.FavoriteCount = bump(d.FavoriteCount, favorited)
		next.Dictionaries = replaceAt(next.Dictionaries, i, d)
		setCurrentUser(next, u)
		return nil
	})
	return favorited, err
}

// ToggleFavoriteGrammar is ToggleFavoriteDictionary for grammars.
func (s *Store) ToggleFavoriteGrammar(grammarID string) (bool, error) {
	var favorited bool
	_, err := s.update("toggle_favorite_grammar", func(next *State, _ time.Time) error {
		if next.CurrentUser == nil {
			return entity.ErrNotAuthenticated
		}
		i := next.grammarIndex(grammarID)
		if i < 0 {
			return entity.ErrGrammarNotFound
		}
		u := next.CurrentUser.Clone()
		u.Favorites.Grammars, favorited = toggle(u.Favorites.Grammars, grammarID)

		g := next.Grammars[i]
		g.FavoriteCount = bump(g.FavoriteCount, favorited)
		next.Grammars = replaceAt(next.Grammars, i, g)
		setCurrentUser(next, u)
		return nil
	})
	return favorited, err
}

// ToggleFavoriteRoadmap is ToggleFavoriteDictionary for roadmaps.
func (s *Store) ToggleFavoriteRoadmap(roadmapID string) (bool, error) {
	var favorited bool
	_, err := s.update("toggle_favorite_roadmap", func(next *State, _ time.Time) error {
		if next.CurrentUser == nil {
			return entity.ErrNotAuthenticated
		}
		i := next.roadmapIndex(roadmapID)
		if i < 0 {
			return entity.ErrRoadmapNotFound
		}
		u := next.CurrentUser.Clone()
		u.Favorites.Roadmaps, favorited = toggle(u.Favorites.Roadmaps, roadmapID)

		r := next.Roadmaps[i]
		r.FavoriteCount = bump(r.FavoriteCount, favorited)
		next.Roadmaps = replaceAt(next.Roadmaps, i, r)
		setCurrentUser(next, u)
		return nil
	})
	return favorited, err
}

func bump(count int, up bool) int {
	if up {
		return count + 1
	}
	return max(count-1, 0)
}

// setCurrentUser commits u as the session user and mirrors its favorites onto the user list.
func setCurrentUser(next *State, u entity.User) {
	next.CurrentUser = &u
	if i := next.userIndex(u.ID); i >= 0 {
		listed := next.Users[i].Clone()
		listed.Favorites = u.Clone().Favorites
		next.Users = replaceAt(next.Users, i, listed)
	}
}
