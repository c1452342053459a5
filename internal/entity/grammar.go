package entity

import (
	"strings"
	"time"
)

// Grammar is a user-owned set of grammar rules for one language.
type Grammar struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Description   string    `json:"description" yaml:"description"`
	Language      Language  `json:"language" yaml:"language"`
	OwnerID       string    `json:"owner_id" yaml:"owner_id"`
	IsPublic      bool      `json:"is_public" yaml:"is_public"`
	RuleCount     int       `json:"rule_count" yaml:"rule_count"`
	FavoriteCount int       `json:"favorite_count" yaml:"favorite_count"`
	CopyCount     int       `json:"copy_count" yaml:"copy_count"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"updated_at"`
}

// GrammarRule is one explained rule with examples.
type GrammarRule struct {
	ID          string    `json:"id" yaml:"id"`
	GrammarID   string    `json:"grammar_id" yaml:"grammar_id"`
	Title       string    `json:"title" yaml:"title"`
	Explanation string    `json:"explanation" yaml:"explanation"`
	Examples    []Example `json:"examples" yaml:"examples"`
	Notes       string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Clone deep-copies the examples.
func (r GrammarRule) Clone() GrammarRule {
	r.Examples = cloneExamples(r.Examples)
	return r
}

// Normalize ensures defaults & constraints before the rule enters the store.
func (r *GrammarRule) Normalize(now time.Time) {
	r.Title = strings.TrimSpace(r.Title)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	if r.Examples == nil {
		r.Examples = []Example{}
	}
}
