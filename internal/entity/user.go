package entity

import (
	"slices"
	"strings"
)

// User represents a learner account.
type User struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	AvatarURL string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	Favorites Favorites `json:"favorites" yaml:"favorites"`
}

// Favorites holds the ids a user has starred, per resource kind. Each list behaves as a set.
type Favorites struct {
	Dictionaries []string `json:"dictionaries" yaml:"dictionaries"`
	Grammars     []string `json:"grammars" yaml:"grammars"`
	Roadmaps     []string `json:"roadmaps" yaml:"roadmaps"`
}

// Validate validates the user entity
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidUserName
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidUserEmail
	}
	return nil
}

// Clone returns a deep copy so callers can mutate favorites without aliasing.
func (u User) Clone() User {
	u.Favorites = Favorites{
		Dictionaries: cloneStrings(u.Favorites.Dictionaries),
		Grammars:     cloneStrings(u.Favorites.Grammars),
		Roadmaps:     cloneStrings(u.Favorites.Roadmaps),
	}
	return u
}

// Normalize replaces nil favorite lists with empty ones.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	if u.Favorites.Dictionaries == nil {
		u.Favorites.Dictionaries = []string{}
	}
	if u.Favorites.Grammars == nil {
		u.Favorites.Grammars = []string{}
	}
	if u.Favorites.Roadmaps == nil {
		u.Favorites.Roadmaps = []string{}
	}
}

// HasFavoriteDictionary reports whether the dictionary id is starred.
func (u *User) HasFavoriteDictionary(id string) bool {
	return slices.Contains(u.Favorites.Dictionaries, id)
}

// HasFavoriteGrammar reports whether the grammar id is starred.
func (u *User) HasFavoriteGrammar(id string) bool {
	return slices.Contains(u.Favorites.Grammars, id)
}

// HasFavoriteRoadmap reports whether the roadmap id is starred.
func (u *User) HasFavoriteRoadmap(id string) bool {
	return slices.Contains(u.Favorites.Roadmaps, id)
}
