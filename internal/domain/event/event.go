package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ProfileEventType string

const (
	ProfileEventTypeCreated ProfileEventType = "profile.created"
	ProfileEventTypeUpdated ProfileEventType = "profile.updated"
	ProfileEventTypeDeleted ProfileEventType = "profile.deleted"
)

// ProfileEvent is emitted after a profile write commits.
type ProfileEvent struct {
	EventType  ProfileEventType `json:"event_type"`
	ProfileID  uuid.UUID        `json:"profile_id"`
	Email      string           `json:"email,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type Publisher interface {
	PublishProfileEvent(ctx context.Context, payload ProfileEvent) error
}
