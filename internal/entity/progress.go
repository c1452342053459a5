package entity

import (
	"slices"
	"time"
)

// UserProgress tracks one user's enrollment in one roadmap.
type UserProgress struct {
	RoadmapID            string    `json:"roadmap_id" yaml:"roadmap_id"`
	UserID               string    `json:"user_id" yaml:"user_id"`
	CurrentStep          int       `json:"current_step" yaml:"current_step"`
	CompletedSteps       []string  `json:"completed_steps" yaml:"completed_steps"`
	StartedAt            time.Time `json:"started_at" yaml:"started_at"`
	LastAccessedAt       time.Time `json:"last_accessed_at" yaml:"last_accessed_at"`
	CompletionPercentage int       `json:"completion_percentage" yaml:"completion_percentage"`
}

// NewUserProgress starts a fresh enrollment at step 1.
func NewUserProgress(userID, roadmapID string, now time.Time) UserProgress {
	return UserProgress{
		RoadmapID:      roadmapID,
		UserID:         userID,
		CurrentStep:    1,
		CompletedSteps: []string{},
		StartedAt:      now,
		LastAccessedAt: now,
	}
}

// Matches reports whether the record belongs to the (user, roadmap) pair.
func (p *UserProgress) Matches(userID, roadmapID string) bool {
	return p.UserID == userID && p.RoadmapID == roadmapID
}

// HasCompleted reports whether the step id is in the completed set.
func (p *UserProgress) HasCompleted(stepID string) bool {
	return slices.Contains(p.CompletedSteps, stepID)
}

// Clone copies the completed set.
func (p UserProgress) Clone() UserProgress {
	p.CompletedSteps = cloneStrings(p.CompletedSteps)
	return p
}

// CompletionPercentage rounds 100*completed/total half up and clamps to [0, 100].
func CompletionPercentage(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	pct := (200*completed + total) / (2 * total)
	return min(pct, 100)
}

// NextStep advances the 1-indexed cursor without passing the last step.
func NextStep(current, total int) int {
	if total <= 0 {
		return current
	}
	return min(current+1, total)
}
