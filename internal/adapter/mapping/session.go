package mapping

import (
	"strings"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/internal/entity"
)

func FromAPIUser(in *lexiroadv1.User) *entity.User {
	if in == nil {
		return nil
	}
	return &entity.User{
		ID:        strings.TrimSpace(in.ID),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		AvatarURL: strings.TrimSpace(in.AvatarURL),
		Favorites: entity.Favorites{
			Dictionaries: append([]string(nil), in.Favorites.Dictionaries...),
			Grammars:     append([]string(nil), in.Favorites.Grammars...),
			Roadmaps:     append([]string(nil), in.Favorites.Roadmaps...),
		},
	}
}

func ToAPIUser(in *entity.User) *lexiroadv1.User {
	if in == nil {
		return nil
	}
	return &lexiroadv1.User{
		ID:        in.ID,
		Name:      in.Name,
		Email:     in.Email,
		AvatarURL: in.AvatarURL,
		Favorites: lexiroadv1.Favorites{
			Dictionaries: nonNil(in.Favorites.Dictionaries),
			Grammars:     nonNil(in.Favorites.Grammars),
			Roadmaps:     nonNil(in.Favorites.Roadmaps),
		},
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return append([]T(nil), in...)
}
