package mapping

import (
	"strings"

	"github.com/samber/lo"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/internal/entity"
)

func FromAPIDictionary(in *lexiroadv1.Dictionary) entity.Dictionary {
	return entity.Dictionary{
		ID:             strings.TrimSpace(in.ID),
		Name:           strings.TrimSpace(in.Name),
		Description:    strings.TrimSpace(in.Description),
		SourceLanguage: entity.ParseLanguage(in.SourceLanguage),
		TargetLanguage: entity.ParseLanguage(in.TargetLanguage),
		OwnerID:        strings.TrimSpace(in.OwnerID),
		IsPublic:       in.IsPublic,
		EntryCount:     in.EntryCount,
		FavoriteCount:  in.FavoriteCount,
		CopyCount:      in.CopyCount,
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
	}
}

func ToAPIDictionary(in *entity.Dictionary) *lexiroadv1.Dictionary {
	return &lexiroadv1.Dictionary{
		ID:             in.ID,
		Name:           in.Name,
		Description:    in.Description,
		SourceLanguage: in.SourceLanguage.Name(),
		TargetLanguage: in.TargetLanguage.Name(),
		OwnerID:        in.OwnerID,
		IsPublic:       in.IsPublic,
		EntryCount:     in.EntryCount,
		FavoriteCount:  in.FavoriteCount,
		CopyCount:      in.CopyCount,
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
	}
}

func ToAPIDictionaries(in []entity.Dictionary) []*lexiroadv1.Dictionary {
	return lo.Map(in, func(d entity.Dictionary, _ int) *lexiroadv1.Dictionary { return ToAPIDictionary(&d) })
}

func FromAPIEntry(in *lexiroadv1.DictionaryEntry) entity.DictionaryEntry {
	return entity.DictionaryEntry{
		ID:            strings.TrimSpace(in.ID),
		DictionaryID:  strings.TrimSpace(in.DictionaryID),
		Term:          strings.TrimSpace(in.Term),
		Pronunciation: strings.TrimSpace(in.Pronunciation),
		PartOfSpeech:  strings.TrimSpace(in.PartOfSpeech),
		Definitions: lo.Map(in.Definitions, func(def lexiroadv1.Definition, _ int) entity.Definition {
			return entity.Definition{
				ID:            strings.TrimSpace(def.ID),
				Text:          strings.TrimSpace(def.Text),
				IsAIGenerated: def.IsAIGenerated,
			}
		}),
		Examples:     lo.Map(in.Examples, func(ex lexiroadv1.Example, _ int) entity.Example { return FromAPIExample(ex) }),
		Notes:        strings.TrimSpace(in.Notes),
		AudioURL:     strings.TrimSpace(in.AudioURL),
		UserAudioURL: strings.TrimSpace(in.UserAudioURL),
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
}

func ToAPIEntry(in *entity.DictionaryEntry) *lexiroadv1.DictionaryEntry {
	return &lexiroadv1.DictionaryEntry{
		ID:            in.ID,
		DictionaryID:  in.DictionaryID,
		Term:          in.Term,
		Pronunciation: in.Pronunciation,
		PartOfSpeech:  in.PartOfSpeech,
		Definitions: lo.Map(in.Definitions, func(def entity.Definition, _ int) lexiroadv1.Definition {
			return lexiroadv1.Definition{ID: def.ID, Text: def.Text, IsAIGenerated: def.IsAIGenerated}
		}),
		Examples:     lo.Map(in.Examples, func(ex entity.Example, _ int) lexiroadv1.Example { return ToAPIExample(ex) }),
		Notes:        in.Notes,
		AudioURL:     in.AudioURL,
		UserAudioURL: in.UserAudioURL,
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
}

func ToAPIEntries(in []entity.DictionaryEntry) []*lexiroadv1.DictionaryEntry {
	return lo.Map(in, func(e entity.DictionaryEntry, _ int) *lexiroadv1.DictionaryEntry { return ToAPIEntry(&e) })
}

func FromAPIExample(in lexiroadv1.Example) entity.Example {
	return entity.Example{
		ID:            strings.TrimSpace(in.ID),
		Text:          strings.TrimSpace(in.Text),
		Translation:   strings.TrimSpace(in.Translation),
		IsAIGenerated: in.IsAIGenerated,
	}
}

func ToAPIExample(in entity.Example) lexiroadv1.Example {
	return lexiroadv1.Example{
		ID:            in.ID,
		Text:          in.Text,
		Translation:   in.Translation,
		IsAIGenerated: in.IsAIGenerated,
	}
}
