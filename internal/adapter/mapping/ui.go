package mapping

import (
	"github.com/samber/lo"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/store"
)

func ToAPISearchFilters(in entity.SearchFilters) lexiroadv1.SearchFilters {
	return lexiroadv1.SearchFilters{
		Query:        in.Query,
		Languages:    lo.Map(in.Languages, func(l entity.Language, _ int) string { return l.Name() }),
		IsPublicOnly: in.IsPublicOnly,
	}
}

func FromAPISearchFilters(in *lexiroadv1.SearchFilters) entity.SearchFilters {
	if in == nil {
		return entity.SearchFilters{Languages: []entity.Language{}}
	}
	return entity.SearchFilters{
		Query:        in.Query,
		Languages:    fromAPILanguages(in.Languages),
		IsPublicOnly: in.IsPublicOnly,
	}
}

func FromAPISearchFiltersPatch(in *lexiroadv1.SetSearchFiltersRequest) entity.SearchFiltersPatch {
	patch := entity.SearchFiltersPatch{
		Query:        in.Query,
		IsPublicOnly: in.IsPublicOnly,
	}
	if in.Languages != nil {
		patch.SetLanguages = true
		patch.Languages = fromAPILanguages(*in.Languages)
	}
	return patch
}

// ToAPIUIState renders the presentation flags together with the current selections.
func ToAPIUIState(st store.State) *lexiroadv1.UIState {
	return &lexiroadv1.UIState{
		SidebarOpen:         st.UI.SidebarOpen,
		DarkMode:            st.UI.DarkMode,
		EntriesViewMode:     string(st.UI.EntriesViewMode),
		SearchFilters:       ToAPISearchFilters(st.UI.SearchFilters),
		CurrentDictionaryID: st.CurrentDictionaryID,
		CurrentGrammarID:    st.CurrentGrammarID,
		CurrentRoadmapID:    st.CurrentRoadmapID,
	}
}

// ToAPIStateEvent summarises a committed state version.
func ToAPIStateEvent(st store.State) *lexiroadv1.StateEvent {
	ev := &lexiroadv1.StateEvent{
		Version:         st.Version,
		Dictionaries:    len(st.Dictionaries),
		Grammars:        len(st.Grammars),
		Roadmaps:        len(st.Roadmaps),
		ProgressRecords: len(st.Progress),
	}
	if st.CurrentUser != nil {
		ev.CurrentUserID = st.CurrentUser.ID
	}
	return ev
}

func fromAPILanguages(in []string) []entity.Language {
	return lo.Map(in, func(l string, _ int) entity.Language { return entity.ParseLanguage(l) })
}
