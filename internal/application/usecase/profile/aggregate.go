package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/J33rry/predusk/internal/domain/event"
	"github.com/J33rry/predusk/internal/domain/profile"
	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/internal/domain/work"
	"github.com/J33rry/predusk/pkg/logger"
)

// Aggregate is a profile together with its owned projects and work
// experiences, the unit returned by every read and write operation.
type Aggregate struct {
	Profile  *profile.Profile
	Projects []*project.Project
	Work     []*work.WorkExperience
}

// loadAggregate re-reads the full aggregate from storage. Writes go through
// this as well so callers always see generated fields as persisted.
func loadAggregate(
	ctx context.Context,
	profileRepo profile.Repository,
	projectRepo project.Repository,
	workRepo work.Repository,
	id uuid.UUID,
) (*Aggregate, error) {
	p, err := profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	projects, err := projectRepo.ListByProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	experiences, err := workRepo.ListByProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Aggregate{Profile: p, Projects: projects, Work: experiences}, nil
}

// afterProfileWrite drops the cached skills ranking and emits the lifecycle
// event. Both are best-effort: the write already committed.
func afterProfileWrite(
	ctx context.Context,
	cache skill.Cache,
	publisher event.Publisher,
	log logger.Logger,
	evt event.ProfileEvent,
) {
	if err := cache.Invalidate(ctx); err != nil {
		log.Warn("Failed to invalidate skills cache", zap.Error(err))
	}

	go func() {
		if err := publisher.PublishProfileEvent(context.Background(), evt); err != nil {
			log.Warn("Failed to publish profile event",
				zap.String("event_type", string(evt.EventType)),
				zap.String("profile_id", evt.ProfileID.String()),
				zap.Error(err))
		}
	}()
}
