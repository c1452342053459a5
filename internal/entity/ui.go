package entity

import "strings"

// ViewMode selects how dictionary entries are laid out.
type ViewMode string

const (
	ViewModeRow  ViewMode = "row"
	ViewModeCard ViewMode = "card"
)

// ParseViewMode validates a view mode string.
func ParseViewMode(raw string) (ViewMode, error) {
	switch mode := ViewMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case ViewModeRow, ViewModeCard:
		return mode, nil
	default:
		return "", ErrInvalidViewMode
	}
}

// SearchFilters holds the explore page filters.
type SearchFilters struct {
	Query        string     `json:"query" yaml:"query"`
	Languages    []Language `json:"languages" yaml:"languages"`
	IsPublicOnly bool       `json:"is_public_only" yaml:"is_public_only"`
}

// Clone copies the language list.
func (f SearchFilters) Clone() SearchFilters {
	if f.Languages != nil {
		f.Languages = append([]Language(nil), f.Languages...)
	}
	return f
}

// SearchFiltersPatch is a partial update; nil fields are left unchanged.
type SearchFiltersPatch struct {
	Query        *string    `json:"query,omitempty"`
	Languages    []Language `json:"languages,omitempty"`
	SetLanguages bool       `json:"set_languages,omitempty"`
	IsPublicOnly *bool      `json:"is_public_only,omitempty"`
}

// Apply merges the patch into filters and returns the result.
func (p SearchFiltersPatch) Apply(f SearchFilters) SearchFilters {
	out := f.Clone()
	if p.Query != nil {
		out.Query = *p.Query
	}
	if p.SetLanguages || p.Languages != nil {
		out.Languages = append([]Language{}, p.Languages...)
	}
	if p.IsPublicOnly != nil {
		out.IsPublicOnly = *p.IsPublicOnly
	}
	return out
}

// UIState groups the presentation flags kept beside the entity collections.
type UIState struct {
	SidebarOpen     bool          `json:"sidebar_open"`
	DarkMode        bool          `json:"dark_mode"`
	EntriesViewMode ViewMode      `json:"entries_view_mode"`
	SearchFilters   SearchFilters `json:"search_filters"`
}

// DefaultUIState matches the initial layout: sidebar open, light theme, row view.
func DefaultUIState() UIState {
	return UIState{
		SidebarOpen:     true,
		EntriesViewMode: ViewModeRow,
		SearchFilters:   SearchFilters{Languages: []Language{}},
	}
}
