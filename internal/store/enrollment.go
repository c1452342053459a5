package store

import (
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// EnrollInRoadmap starts the current user's progress on roadmapID and bumps its enrollment count.
// Enrolling twice returns the existing record with ErrAlreadyEnrolled and changes nothing.
func (s *Store) EnrollInRoadmap(roadmapID string) (entity.UserProgress, error) {
	var progress entity.UserProgress
	_, err := s.update("enroll_in_roadmap", func(next *State, now time.Time) error {
		if next.CurrentUser == nil {
			return entity.ErrNotAuthenticated
		}
		ri := next.roadmapIndex(roadmapID)
		if ri < 0 {
			return entity.ErrRoadmapNotFound
		}
		if len(next.Roadmaps[ri].Steps) == 0 {
			return entity.ErrEmptyRoadmap
		}
		userID := next.CurrentUser.ID
		if pi := next.progressIndex(userID, roadmapID); pi >= 0 {
			progress = next.Progress[pi].Clone()
			return entity.ErrAlreadyEnrolled
		}

		progress = entity.NewUserProgress(userID, roadmapID, now)
		next.Progress = appendTo(next.Progress, progress)

		r := next.Roadmaps[ri]
		r.EnrollmentCount++
		next.Roadmaps = replaceAt(next.Roadmaps, ri, r)
		return nil
	})
	return progress.Clone(), err
}

// CompleteStep marks stepID done for the current user, recomputes the completion percentage and
// advances the current step. Completing a step twice returns ErrStepAlreadyCompleted.
func (s *Store) CompleteStep(roadmapID, stepID string) (entity.UserProgress, error) {
	var progress entity.UserProgress
	_, err := s.update("complete_step", func(next *State, now time.Time) error {
		if next.CurrentUser == nil {
			return entity.ErrNotAuthenticated
		}
		ri := next.roadmapIndex(roadmapID)
		if ri < 0 {
			return entity.ErrRoadmapNotFound
		}
		pi := next.progressIndex(next.CurrentUser.ID, roadmapID)
		if pi < 0 {
			return entity.ErrNotEnrolled
		}
		roadmap := next.Roadmaps[ri]
		if _, ok := roadmap.Step(stepID); !ok {
			return entity.ErrStepNotFound
		}
		p := next.Progress[pi].Clone()
		if p.HasCompleted(stepID) {
			return entity.ErrStepAlreadyCompleted
		}

		total := roadmap.TotalSteps()
		p.CompletedSteps = append(p.CompletedSteps, stepID)
		p.CompletionPercentage = entity.CompletionPercentage(len(p.CompletedSteps), total)
		p.CurrentStep = entity.NextStep(p.CurrentStep, total)
		p.LastAccessedAt = now
		next.Progress = replaceAt(next.Progress, pi, p)
		progress = p
		return nil
	})
	return progress.Clone(), err
}

// Progress returns the current user's enrollment in roadmapID.
func (s *Store) Progress(roadmapID string) (entity.UserProgress, error) {
	st := s.Snapshot()
	if st.CurrentUser == nil {
		return entity.UserProgress{}, entity.ErrNotAuthenticated
	}
	p, ok := st.ProgressFor(st.CurrentUser.ID, roadmapID)
	if !ok {
		return entity.UserProgress{}, entity.ErrNotEnrolled
	}
	return p.Clone(), nil
}

// ProgressFor returns the enrollment of any user.
func (s *Store) ProgressFor(userID, roadmapID string) (entity.UserProgress, bool) {
	p, ok := s.Snapshot().ProgressFor(userID, roadmapID)
	return p.Clone(), ok
}
