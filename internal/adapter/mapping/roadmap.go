package mapping

import (
	"strings"

	"github.com/samber/lo"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/internal/entity"
)

func FromAPIRoadmap(in *lexiroadv1.Roadmap) entity.Roadmap {
	return entity.Roadmap{
		ID:                strings.TrimSpace(in.ID),
		Name:              strings.TrimSpace(in.Name),
		Description:       strings.TrimSpace(in.Description),
		Language:          entity.ParseLanguage(in.Language),
		Level:             entity.Level(strings.ToLower(strings.TrimSpace(in.Level))),
		EstimatedDuration: strings.TrimSpace(in.EstimatedDuration),
		OwnerID:           strings.TrimSpace(in.OwnerID),
		IsPublic:          in.IsPublic,
		EnrollmentCount:   in.EnrollmentCount,
		FavoriteCount:     in.FavoriteCount,
		CopyCount:         in.CopyCount,
		Steps: lo.FilterMap(in.Steps, func(step *lexiroadv1.RoadmapStep, _ int) (entity.RoadmapStep, bool) {
			if step == nil {
				return entity.RoadmapStep{}, false
			}
			return entity.RoadmapStep{
				ID:            strings.TrimSpace(step.ID),
				Title:         strings.TrimSpace(step.Title),
				Description:   strings.TrimSpace(step.Description),
				Order:         step.Order,
				Type:          entity.StepType(strings.ToLower(strings.TrimSpace(step.Type))),
				ResourceID:    strings.TrimSpace(step.ResourceID),
				EstimatedTime: strings.TrimSpace(step.EstimatedTime),
				Objectives:    append([]string(nil), step.Objectives...),
			}, true
		}),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func ToAPIRoadmap(in *entity.Roadmap) *lexiroadv1.Roadmap {
	return &lexiroadv1.Roadmap{
		ID:                in.ID,
		Name:              in.Name,
		Description:       in.Description,
		Language:          in.Language.Name(),
		Level:             string(in.Level),
		EstimatedDuration: in.EstimatedDuration,
		OwnerID:           in.OwnerID,
		IsPublic:          in.IsPublic,
		EnrollmentCount:   in.EnrollmentCount,
		FavoriteCount:     in.FavoriteCount,
		CopyCount:         in.CopyCount,
		Steps: lo.Map(in.Steps, func(step entity.RoadmapStep, _ int) *lexiroadv1.RoadmapStep {
			return &lexiroadv1.RoadmapStep{
				ID:            step.ID,
				Title:         step.Title,
				Description:   step.Description,
				Order:         step.Order,
				Type:          string(step.Type),
				ResourceID:    step.ResourceID,
				EstimatedTime: step.EstimatedTime,
				Objectives:    nonNil(step.Objectives),
			}
		}),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func ToAPIRoadmaps(in []entity.Roadmap) []*lexiroadv1.Roadmap {
	return lo.Map(in, func(r entity.Roadmap, _ int) *lexiroadv1.Roadmap { return ToAPIRoadmap(&r) })
}

func ToAPIProgress(in *entity.UserProgress) *lexiroadv1.Progress {
	if in == nil {
		return nil
	}
	return &lexiroadv1.Progress{
		RoadmapID:            in.RoadmapID,
		UserID:               in.UserID,
		CurrentStep:          in.CurrentStep,
		CompletedSteps:       nonNil(in.CompletedSteps),
		StartedAt:            in.StartedAt,
		LastAccessedAt:       in.LastAccessedAt,
		CompletionPercentage: in.CompletionPercentage,
	}
}
