package entity

import "strings"

// Language is the display name of a natural language ("Spanish", "French").
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageEnglish     Language = "English"
	LanguageSpanish     Language = "Spanish"
	LanguageFrench      Language = "French"
	LanguageGerman      Language = "German"
	LanguageItalian     Language = "Italian"
	LanguagePortuguese  Language = "Portuguese"
	LanguageRussian     Language = "Russian"
	LanguageJapanese    Language = "Japanese"
	LanguageChinese     Language = "Chinese"
	LanguageKorean      Language = "Korean"
	LanguageArabic      Language = "Arabic"
)

// SupportedLanguages lists the languages offered by the language picker.
var SupportedLanguages = []Language{
	LanguageEnglish,
	LanguageSpanish,
	LanguageFrench,
	LanguageGerman,
	LanguageItalian,
	LanguagePortuguese,
	LanguageRussian,
	LanguageJapanese,
	LanguageChinese,
	LanguageKorean,
	LanguageArabic,
}

// Name returns the trimmed language name (without defaulting).
func (l Language) Name() string {
	return strings.TrimSpace(string(l))
}

// Equal compares two language names case-insensitively.
func (l Language) Equal(other Language) bool {
	return strings.EqualFold(l.Name(), other.Name())
}

// ParseLanguage maps an arbitrary string onto a supported language, keeping unknown names verbatim.
func ParseLanguage(name string) Language {
	trimmed := strings.TrimSpace(name)
	for _, lang := range SupportedLanguages {
		if strings.EqualFold(string(lang), trimmed) {
			return lang
		}
	}
	return Language(trimmed)
}

// Level is the difficulty tier of a roadmap.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether the level is one of the known tiers.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// ParseLevel converts user input into a Level, returning ErrInvalidLevel for unknown values.
func ParseLevel(raw string) (Level, error) {
	lvl := Level(strings.ToLower(strings.TrimSpace(raw)))
	if !lvl.Valid() {
		return "", ErrInvalidLevel
	}
	return lvl, nil
}

// Visibility renders the IsPublic flag used by filters.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// VisibilityOf maps the boolean flag onto its filter value.
func VisibilityOf(isPublic bool) Visibility {
	if isPublic {
		return VisibilityPublic
	}
	return VisibilityPrivate
}

// Example is a usage sample attached to an entry or a grammar rule.
type Example struct {
	ID            string `json:"id" yaml:"id"`
	Text          string `json:"text" yaml:"text"`
	Translation   string `json:"translation,omitempty" yaml:"translation,omitempty"`
	IsAIGenerated bool   `json:"is_ai_generated" yaml:"is_ai_generated"`
}

func cloneExamples(src []Example) []Example {
	if src == nil {
		return nil
	}
	return append([]Example(nil), src...)
}

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	return append([]string(nil), src...)
}
