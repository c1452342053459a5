package entity

import "errors"

// Precondition errors returned by store operations. The state is left untouched when one is returned.
var (
	ErrNotAuthenticated     = errors.New("no user signed in")
	ErrAlreadyEnrolled      = errors.New("already enrolled in roadmap")
	ErrNotEnrolled          = errors.New("not enrolled in roadmap")
	ErrStepAlreadyCompleted = errors.New("step already completed")
)

// Referential errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDictionaryNotFound = errors.New("dictionary not found")
	ErrGrammarNotFound    = errors.New("grammar not found")
	ErrRoadmapNotFound    = errors.New("roadmap not found")
	ErrStepNotFound       = errors.New("roadmap step not found")
)

// Validation errors.
var (
	ErrInvalidUserName   = errors.New("invalid user name")
	ErrInvalidUserEmail  = errors.New("invalid user email")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidName       = errors.New("name is required")
	ErrInvalidTerm       = errors.New("entry term is required")
	ErrInvalidRuleTitle  = errors.New("rule title is required")
	ErrInvalidLevel      = errors.New("invalid roadmap level")
	ErrInvalidStepType   = errors.New("invalid roadmap step type")
	ErrInvalidStepTitle  = errors.New("roadmap step title is required")
	ErrEmptyRoadmap      = errors.New("roadmap requires at least one step")
	ErrInvalidStepOrder  = errors.New("roadmap step orders must run 1..N")
	ErrInvalidViewMode   = errors.New("invalid view mode")
	ErrDuplicateID       = errors.New("duplicate id in collection")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidQuery      = errors.New("invalid list query")
)
