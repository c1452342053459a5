// Package lexiroadv1 holds the request and response messages of the lexiroad.v1 services.
// Messages travel as JSON; request fields carry validator tags checked before a handler runs.
package lexiroadv1

import "time"

type Empty struct{}

type IDRequest struct {
	ID string `json:"id" validate:"required"`
}

// SelectRequest selects a resource; an empty ID clears the selection.
type SelectRequest struct {
	ID string `json:"id"`
}

type PaginationRequest struct {
	PageNo   int32 `json:"pageNo" validate:"gte=0"`
	PageSize int32 `json:"pageSize" validate:"gte=0,lte=10000"`
}

type PaginationResponse struct {
	Total  int64 `json:"total"`
	PageNo int32 `json:"pageNo"`
}

type ListRequest struct {
	Pagination *PaginationRequest `json:"pagination"`
	Filter     string             `json:"filter"`
	OrderBy    string             `json:"orderBy"`
	OwnerID    string             `json:"ownerId"`
}

func (r *ListRequest) GetPagination() *PaginationRequest {
	if r == nil {
		return nil
	}
	return r.Pagination
}

func (p *PaginationRequest) GetPageNo() int32 {
	if p == nil {
		return 0
	}
	return p.PageNo
}

func (p *PaginationRequest) GetPageSize() int32 {
	if p == nil {
		return 0
	}
	return p.PageSize
}

// Session

type Favorites struct {
	Dictionaries []string `json:"dictionaries"`
	Grammars     []string `json:"grammars"`
	Roadmaps     []string `json:"roadmaps"`
}

type User struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	AvatarURL string    `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Favorites Favorites `json:"favorites"`
}

type SessionResponse struct {
	User *User `json:"user,omitempty"`
}

type SetCurrentUserRequest struct {
	User *User `json:"user" validate:"omitempty"`
}

type SignInRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type SearchUsersRequest struct {
	Query string `json:"query"`
}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

// Shared resource parts

type Example struct {
	ID            string `json:"id,omitempty"`
	Text          string `json:"text" validate:"required"`
	Translation   string `json:"translation,omitempty"`
	IsAIGenerated bool   `json:"isAiGenerated,omitempty"`
}

type FavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

// Dictionaries

type Dictionary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Description    string    `json:"description"`
	SourceLanguage string    `json:"sourceLanguage" validate:"required"`
	TargetLanguage string    `json:"targetLanguage" validate:"required"`
	OwnerID        string    `json:"ownerId"`
	IsPublic       bool      `json:"isPublic"`
	EntryCount     int       `json:"entryCount"`
	FavoriteCount  int       `json:"favoriteCount"`
	CopyCount      int       `json:"copyCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Definition struct {
	ID            string `json:"id,omitempty"`
	Text          string `json:"text" validate:"required"`
	IsAIGenerated bool   `json:"isAiGenerated,omitempty"`
}

type DictionaryEntry struct {
	ID            string       `json:"id"`
	DictionaryID  string       `json:"dictionaryId"`
	Term          string       `json:"term" validate:"required"`
	Pronunciation string       `json:"pronunciation,omitempty"`
	PartOfSpeech  string       `json:"partOfSpeech,omitempty"`
	Definitions   []Definition `json:"definitions" validate:"dive"`
	Examples      []Example    `json:"examples" validate:"dive"`
	Notes         string       `json:"notes,omitempty"`
	AudioURL      string       `json:"audioUrl,omitempty"`
	UserAudioURL  string       `json:"userAudioUrl,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type ListDictionariesResponse struct {
	Dictionaries []*Dictionary      `json:"dictionaries"`
	Pagination   PaginationResponse `json:"pagination"`
}

type DictionaryDetail struct {
	Dictionary *Dictionary        `json:"dictionary"`
	Entries    []*DictionaryEntry `json:"entries"`
}

type CreateDictionaryRequest struct {
	Dictionary *Dictionary `json:"dictionary" validate:"required"`
}

type AddEntryRequest struct {
	DictionaryID string           `json:"dictionaryId" validate:"required"`
	Entry        *DictionaryEntry `json:"entry" validate:"required"`
}

type SetDictionariesRequest struct {
	Dictionaries []*Dictionary `json:"dictionaries" validate:"dive,required"`
}

type SetEntriesRequest struct {
	DictionaryID string             `json:"dictionaryId" validate:"required"`
	Entries      []*DictionaryEntry `json:"entries" validate:"dive,required"`
}

// Grammars

type Grammar struct {
	ID            string    `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description"`
	Language      string    `json:"language" validate:"required"`
	OwnerID       string    `json:"ownerId"`
	IsPublic      bool      `json:"isPublic"`
	RuleCount     int       `json:"ruleCount"`
	FavoriteCount int       `json:"favoriteCount"`
	CopyCount     int       `json:"copyCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type GrammarRule struct {
	ID          string    `json:"id"`
	GrammarID   string    `json:"grammarId"`
	Title       string    `json:"title" validate:"required"`
	Explanation string    `json:"explanation"`
	Examples    []Example `json:"examples" validate:"dive"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListGrammarsResponse struct {
	Grammars   []*Grammar         `json:"grammars"`
	Pagination PaginationResponse `json:"pagination"`
}

type GrammarDetail struct {
	Grammar *Grammar       `json:"grammar"`
	Rules   []*GrammarRule `json:"rules"`
}

type CreateGrammarRequest struct {
	Grammar *Grammar `json:"grammar" validate:"required"`
}

type AddRuleRequest struct {
	GrammarID string       `json:"grammarId" validate:"required"`
	Rule      *GrammarRule `json:"rule" validate:"required"`
}

type SetGrammarsRequest struct {
	Grammars []*Grammar `json:"grammars" validate:"dive,required"`
}

type SetRulesRequest struct {
	GrammarID string         `json:"grammarId" validate:"required"`
	Rules     []*GrammarRule `json:"rules" validate:"dive,required"`
}

// Roadmaps

type RoadmapStep struct {
	ID            string   `json:"id"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Order         int      `json:"order" validate:"gte=0"`
	Type          string   `json:"type" validate:"required,oneof=dictionary grammar practice milestone"`
	ResourceID    string   `json:"resourceId,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Objectives    []string `json:"objectives"`
}

type Roadmap struct {
	ID                string         `json:"id"`
	Name              string         `json:"name" validate:"required"`
	Description       string         `json:"description"`
	Language          string         `json:"language" validate:"required"`
	Level             string         `json:"level" validate:"required"`
	EstimatedDuration string         `json:"estimatedDuration"`
	OwnerID           string         `json:"ownerId"`
	IsPublic          bool           `json:"isPublic"`
	EnrollmentCount   int            `json:"enrollmentCount"`
	FavoriteCount     int            `json:"favoriteCount"`
	CopyCount         int            `json:"copyCount"`
	Steps             []*RoadmapStep `json:"steps" validate:"dive,required"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

type ListRoadmapsResponse struct {
	Roadmaps   []*Roadmap         `json:"roadmaps"`
	Pagination PaginationResponse `json:"pagination"`
}

type CreateRoadmapRequest struct {
	Roadmap *Roadmap `json:"roadmap" validate:"required"`
}

type SetRoadmapsRequest struct {
	Roadmaps []*Roadmap `json:"roadmaps" validate:"dive,required"`
}

type CompleteStepRequest struct {
	RoadmapID string `json:"roadmapId" validate:"required"`
	StepID    string `json:"stepId" validate:"required"`
}

type Progress struct {
	RoadmapID            string    `json:"roadmapId"`
	UserID               string    `json:"userId"`
	CurrentStep          int       `json:"currentStep"`
	CompletedSteps       []string  `json:"completedSteps"`
	StartedAt            time.Time `json:"startedAt"`
	LastAccessedAt       time.Time `json:"lastAccessedAt"`
	CompletionPercentage int       `json:"completionPercentage"`
}

type ProgressResponse struct {
	Progress *Progress `json:"progress,omitempty"`
}

// UI

type SearchFilters struct {
	Query        string   `json:"query"`
	Languages    []string `json:"languages"`
	IsPublicOnly bool     `json:"isPublicOnly"`
}

type UIState struct {
	SidebarOpen         bool          `json:"sidebarOpen"`
	DarkMode            bool          `json:"darkMode"`
	EntriesViewMode     string        `json:"entriesViewMode"`
	SearchFilters       SearchFilters `json:"searchFilters"`
	CurrentDictionaryID string        `json:"currentDictionaryId,omitempty"`
	CurrentGrammarID    string        `json:"currentGrammarId,omitempty"`
	CurrentRoadmapID    string        `json:"currentRoadmapId,omitempty"`
}

type SetViewModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=row card"`
}

// SetSearchFiltersRequest merges into the current filters; absent fields keep their value.
type SetSearchFiltersRequest struct {
	Query        *string   `json:"query,omitempty"`
	Languages    *[]string `json:"languages,omitempty"`
	IsPublicOnly *bool     `json:"isPublicOnly,omitempty"`
}

// Catalog

// ExploreRequest searches every resource kind. Without Filters the session's search filters apply.
type ExploreRequest struct {
	Filters *SearchFilters `json:"filters,omitempty"`
}

type ExploreResponse struct {
	Dictionaries []*Dictionary `json:"dictionaries"`
	Grammars     []*Grammar    `json:"grammars"`
	Roadmaps     []*Roadmap    `json:"roadmaps"`
}

type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

// State stream

type WatchStateRequest struct{}

// StateEvent announces a committed state version with enough summary for a client to decide what to refetch.
type StateEvent struct {
	Version         uint64 `json:"version"`
	CurrentUserID   string `json:"currentUserId,omitempty"`
	Dictionaries    int    `json:"dictionaries"`
	Grammars        int    `json:"grammars"`
	Roadmaps        int    `json:"roadmaps"`
	ProgressRecords int    `json:"progressRecords"`
}
