package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// StepType names the kind of resource a roadmap step points at.
type StepType string

const (
	StepTypeDictionary StepType = "dictionary"
	StepTypeGrammar    StepType = "grammar"
	StepTypePractice   StepType = "practice"
	StepTypeMilestone  StepType = "milestone"
)

// Valid reports whether the step type is known.
func (t StepType) Valid() bool {
	switch t {
	case StepTypeDictionary, StepTypeGrammar, StepTypePractice, StepTypeMilestone:
		return true
	default:
		return false
	}
}

// Roadmap is an ordered learning path made of steps.
type Roadmap struct {
	ID                string        `json:"id" yaml:"id"`
	Name              string        `json:"name" yaml:"name"`
	Description       string        `json:"description" yaml:"description"`
	Language          Language      `json:"language" yaml:"language"`
	Level             Level         `json:"level" yaml:"level"`
	EstimatedDuration string        `json:"estimated_duration" yaml:"estimated_duration"`
	OwnerID           string        `json:"owner_id" yaml:"owner_id"`
	IsPublic          bool          `json:"is_public" yaml:"is_public"`
	EnrollmentCount   int           `json:"enrollment_count" yaml:"enrollment_count"`
	FavoriteCount     int           `json:"favorite_count" yaml:"favorite_count"`
	CopyCount         int           `json:"copy_count" yaml:"copy_count"`
	Steps             []RoadmapStep `json:"steps" yaml:"steps"`
	CreatedAt         time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" yaml:"updated_at"`
}

// RoadmapStep is one position in a roadmap. ResourceID is resolved against the collection named by Type.
type RoadmapStep struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Order         int      `json:"order" yaml:"order"`
	Type          StepType `json:"type" yaml:"type"`
	ResourceID    string   `json:"resource_id,omitempty" yaml:"resource_id,omitempty"`
	EstimatedTime string   `json:"estimated_time" yaml:"estimated_time"`
	Objectives    []string `json:"objectives" yaml:"objectives"`
}

// Clone deep-copies the steps and their objectives.
func (r Roadmap) Clone() Roadmap {
	if r.Steps != nil {
		steps := make([]RoadmapStep, len(r.Steps))
		for i, step := range r.Steps {
			step.Objectives = cloneStrings(step.Objectives)
			steps[i] = step
		}
		r.Steps = steps
	}
	return r
}

// TotalSteps returns the number of steps.
func (r *Roadmap) TotalSteps() int {
	return len(r.Steps)
}

// Step looks up a step by id.
func (r *Roadmap) Step(stepID string) (RoadmapStep, bool) {
	for _, step := range r.Steps {
		if step.ID == stepID {
			return step, true
		}
	}
	return RoadmapStep{}, false
}

// SortSteps orders the steps by their Order field.
func (r *Roadmap) SortSteps() {
	slices.SortStableFunc(r.Steps, func(a, b RoadmapStep) int {
		return a.Order - b.Order
	})
}

// Renumber sorts steps and rewrites Order as 1..N.
func (r *Roadmap) Renumber() {
	r.SortSteps()
	for i := range r.Steps {
		r.Steps[i].Order = i + 1
	}
}

// Validate checks the required roadmap fields and every step. Steps must already be sorted and
// numbered 1..N with unique ids.
func (r *Roadmap) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if !r.Level.Valid() {
		return ErrInvalidLevel
	}
	if len(r.Steps) == 0 {
		return ErrEmptyRoadmap
	}
	seen := make(map[string]struct{}, len(r.Steps))
	for i, step := range r.Steps {
		if step.Order != i+1 {
			return ErrInvalidStepOrder
		}
		if _, dup := seen[step.ID]; dup && step.ID != "" {
			return ErrDuplicateID
		}
		seen[step.ID] = struct{}{}
		if strings.TrimSpace(step.Title) == "" {
			return ErrInvalidStepTitle
		}
		if !step.Type.Valid() {
			return ErrInvalidStepType
		}
	}
	return nil
}

// ReconcileProgress drops completed ids that are no longer steps of r and recomputes the
// percentage and the step cursor against the current step list.
func (r *Roadmap) ReconcileProgress(p UserProgress) UserProgress {
	p.CompletedSteps = lo.Filter(p.CompletedSteps, func(id string, _ int) bool {
		_, ok := r.Step(id)
		return ok
	})
	total := r.TotalSteps()
	p.CompletionPercentage = CompletionPercentage(len(p.CompletedSteps), total)
	p.CurrentStep = max(p.CurrentStep, 1)
	if total > 0 {
		p.CurrentStep = min(p.CurrentStep, total)
	}
	return p
}

// CompactObjectives trims objectives and drops the blank ones.
func CompactObjectives(objectives []string) []string {
	out := make([]string, 0, len(objectives))
	for _, objective := range objectives {
		if trimmed := strings.TrimSpace(objective); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
