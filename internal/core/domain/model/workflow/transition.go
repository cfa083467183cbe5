package workflow

import (
	"time"

	"careshare/internal/core/domain/model/kernel"
)

// Deleted is the pseudo-status reported for entities that were removed.
const Deleted = "DELETED"

// Created is the pseudo-status reported as the origin of a newly created entity.
const Created = "NONE"

// Transition records one applied status change.
type Transition struct {
	Kind     Kind
	EntityID kernel.UUID
	From     string
	To       string

	// Override marks administrative changes that bypassed the transition rules.
	Override bool
}

// Event is the notification intent produced after a unit of work commits.
type Event struct {
	Transition Transition
	ActorID    kernel.UUID
	Recipients []kernel.UUID
	OccurredAt time.Time
}

// NewEvent builds an Event, dropping repeated and empty recipients.
func NewEvent(transition Transition, actorID kernel.UUID, recipients ...kernel.UUID) Event {
	unique := make([]kernel.UUID, 0, len(recipients))
	for _, r := range recipients {
		if r.Validate() != nil {
			continue
		}
		seen := false
		for _, u := range unique {
			if u.IsEqual(r) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, r)
		}
	}

	return Event{
		Transition: transition,
		ActorID:    actorID,
		Recipients: unique,
		OccurredAt: time.Now().UTC(),
	}
}
