package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/eslsoft/lexiroad/internal/entity"
)

func TestEnrollAndCompleteAllSteps(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "sarah@example.com")

	p, err := s.EnrollInRoadmap("roadmap-1")
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if p.CurrentStep != 1 || len(p.CompletedSteps) != 0 || p.CompletionPercentage != 0 {
		t.Fatalf("unexpected fresh progress: %+v", p)
	}
	if !p.StartedAt.Equal(fixedNow) || !p.LastAccessedAt.Equal(fixedNow) {
		t.Fatalf("expected timestamps at %v, got %+v", fixedNow, p)
	}

	steps := []string{"step-1", "step-2", "step-3", "step-4", "step-5"}
	wantPct := []int{20, 40, 60, 80, 100}
	wantCur := []int{2, 3, 4, 5, 5}
	for i, step := range steps {
		p, err = s.CompleteStep("roadmap-1", step)
		if err != nil {
			t.Fatalf("complete %s: %v", step, err)
		}
		if p.CompletionPercentage != wantPct[i] {
			t.Errorf("after %s expected %d%%, got %d%%", step, wantPct[i], p.CompletionPercentage)
		}
		if p.CurrentStep != wantCur[i] {
			t.Errorf("after %s expected current step %d, got %d", step, wantCur[i], p.CurrentStep)
		}
	}
	if diff := cmp.Diff(steps, p.CompletedSteps); diff != "" {
		t.Fatalf("completed steps mismatch (-want +got):\n%s", diff)
	}

	stored, err := s.Progress("roadmap-1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if diff := cmp.Diff(p, stored); diff != "" {
		t.Fatalf("stored progress mismatch (-want +got):\n%s", diff)
	}
}

func TestCompletionPercentageRounds(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "sarah@example.com")
	if _, err := s.EnrollInRoadmap("roadmap-2"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	want := []int{33, 67, 100}
	for i, step := range []string{"step-6", "step-7", "step-8"} {
		p, err := s.CompleteStep("roadmap-2", step)
		if err != nil {
			t.Fatalf("complete %s: %v", step, err)
		}
		if p.CompletionPercentage != want[i] {
			t.Fatalf("after %d of 3 expected %d%%, got %d%%", i+1, want[i], p.CompletionPercentage)
		}
	}
}

func TestEnrollIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "sarah@example.com")

	first, err := s.EnrollInRoadmap("roadmap-3")
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	version := s.Version()

	again, err := s.EnrollInRoadmap("roadmap-3")
	if !errors.Is(err, entity.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if diff := cmp.Diff(first, again); diff != "" {
		t.Fatalf("expected existing record back (-want +got):\n%s", diff)
	}
	if s.Version() != version {
		t.Fatalf("expected no commit on duplicate enroll")
	}

	st := s.Snapshot()
	r, _ := st.Roadmap("roadmap-3")
	if r.EnrollmentCount != 157 {
		t.Fatalf("expected enrollment count 157, got %d", r.EnrollmentCount)
	}
	count := 0
	for _, p := range st.Progress {
		if p.Matches("user-2", "roadmap-3") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one progress record, got %d", count)
	}
}

func TestEnrollmentPreconditions(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.EnrollInRoadmap("roadmap-1"); !errors.Is(err, entity.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := s.CompleteStep("roadmap-1", "step-1"); !errors.Is(err, entity.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := s.Progress("roadmap-1"); !errors.Is(err, entity.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	signIn(t, s, "sarah@example.com")
	tests := []struct {
		name    string
		roadmap string
		step    string
		want    error
	}{
		{name: "unknown roadmap", roadmap: "roadmap-x", step: "step-1", want: entity.ErrRoadmapNotFound},
		{name: "not enrolled", roadmap: "roadmap-2", step: "step-6", want: entity.ErrNotEnrolled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CompleteStep(tt.roadmap, tt.step); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
	if _, err := s.EnrollInRoadmap("roadmap-x"); !errors.Is(err, entity.ErrRoadmapNotFound) {
		t.Fatalf("expected ErrRoadmapNotFound, got %v", err)
	}
}

func TestEnrollRejectsRoadmapWithoutSteps(t *testing.T) {
	snap := fixtureSnapshot(t)
	snap.Roadmaps = append(snap.Roadmaps, entity.Roadmap{ID: "roadmap-empty", Name: "Empty", Level: entity.LevelBeginner})
	s := New(snap, WithClock(func() time.Time { return fixedNow }))
	signIn(t, s, "sarah@example.com")
	version := s.Version()

	if _, err := s.EnrollInRoadmap("roadmap-empty"); !errors.Is(err, entity.ErrEmptyRoadmap) {
		t.Fatalf("expected ErrEmptyRoadmap, got %v", err)
	}
	if s.Version() != version {
		t.Fatalf("expected no commit")
	}
	if _, ok := s.Snapshot().ProgressFor("user-2", "roadmap-empty"); ok {
		t.Fatalf("expected no progress record")
	}
}

func TestCompleteStepRejectsForeignAndDuplicateSteps(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "alex@example.com")

	// Alex starts enrolled in roadmap-1 with step-1 done.
	if _, err := s.CompleteStep("roadmap-1", "step-6"); !errors.Is(err, entity.ErrStepNotFound) {
		t.Fatalf("expected ErrStepNotFound, got %v", err)
	}
	version := s.Version()
	if _, err := s.CompleteStep("roadmap-1", "step-1"); !errors.Is(err, entity.ErrStepAlreadyCompleted) {
		t.Fatalf("expected ErrStepAlreadyCompleted, got %v", err)
	}
	if s.Version() != version {
		t.Fatalf("expected no commit on duplicate completion")
	}
	p, _ := s.Progress("roadmap-1")
	if p.CompletionPercentage != 20 || len(p.CompletedSteps) != 1 {
		t.Fatalf("expected progress unchanged, got %+v", p)
	}
}

func TestCompleteStepOutOfOrder(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "sarah@example.com")
	if _, err := s.EnrollInRoadmap("roadmap-1"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	p, err := s.CompleteStep("roadmap-1", "step-4")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if p.CurrentStep != 2 || p.CompletionPercentage != 20 {
		t.Fatalf("expected cursor to advance by one, got %+v", p)
	}
}

func TestProgressFor(t *testing.T) {
	s := newTestStore(t)
	p, ok := s.ProgressFor("user-1", "roadmap-1")
	if !ok {
		t.Fatalf("expected fixture progress")
	}
	if p.CurrentStep != 2 || p.CompletionPercentage != 20 {
		t.Fatalf("unexpected fixture progress: %+v", p)
	}
	if _, ok := s.ProgressFor("user-2", "roadmap-1"); ok {
		t.Fatalf("expected no progress for user-2")
	}
}

func TestCompletionPercentageHelper(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{1, 200, 1},
		{7, 5, 100},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := entity.CompletionPercentage(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionPercentage(%d, %d): expected %d, got %d", tt.completed, tt.total, tt.want, got)
		}
	}
}
