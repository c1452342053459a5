package entity

import (
	"strings"
	"time"
)

// Dictionary is a user-owned vocabulary list translating SourceLanguage into TargetLanguage.
type Dictionary struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Description    string    `json:"description" yaml:"description"`
	SourceLanguage Language  `json:"source_language" yaml:"source_language"`
	TargetLanguage Language  `json:"target_language" yaml:"target_language"`
	OwnerID        string    `json:"owner_id" yaml:"owner_id"`
	IsPublic       bool      `json:"is_public" yaml:"is_public"`
	EntryCount     int       `json:"entry_count" yaml:"entry_count"`
	FavoriteCount  int       `json:"favorite_count" yaml:"favorite_count"`
	CopyCount      int       `json:"copy_count" yaml:"copy_count"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

// SpeaksLanguage reports whether the dictionary translates from or into lang.
func (d *Dictionary) SpeaksLanguage(lang Language) bool {
	return d.SourceLanguage.Equal(lang) || d.TargetLanguage.Equal(lang)
}

// DictionaryEntry is one term inside a dictionary.
type DictionaryEntry struct {
	ID            string       `json:"id" yaml:"id"`
	DictionaryID  string       `json:"dictionary_id" yaml:"dictionary_id"`
	Term          string       `json:"term" yaml:"term"`
	Pronunciation string       `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
	PartOfSpeech  string       `json:"part_of_speech" yaml:"part_of_speech"`
	Definitions   []Definition `json:"definitions" yaml:"definitions"`
	Examples      []Example    `json:"examples" yaml:"examples"`
	Notes         string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	AudioURL      string       `json:"audio_url,omitempty" yaml:"audio_url,omitempty"`
	UserAudioURL  string       `json:"user_audio_url,omitempty" yaml:"user_audio_url,omitempty"`
	CreatedAt     time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" yaml:"updated_at"`
}

// Definition is one meaning of an entry.
type Definition struct {
	ID            string `json:"id" yaml:"id"`
	Text          string `json:"text" yaml:"text"`
	IsAIGenerated bool   `json:"is_ai_generated" yaml:"is_ai_generated"`
}

// Clone deep-copies the nested definitions and examples.
func (e DictionaryEntry) Clone() DictionaryEntry {
	if e.Definitions != nil {
		e.Definitions = append([]Definition(nil), e.Definitions...)
	}
	e.Examples = cloneExamples(e.Examples)
	return e
}

// Normalize ensures defaults & constraints before the entry enters the store.
func (e *DictionaryEntry) Normalize(now time.Time) {
	e.Term = strings.TrimSpace(e.Term)
	e.PartOfSpeech = strings.ToLower(strings.TrimSpace(e.PartOfSpeech))
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	if e.Definitions == nil {
		e.Definitions = []Definition{}
	}
	if e.Examples == nil {
		e.Examples = []Example{}
	}
}
