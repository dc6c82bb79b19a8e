// Package notifier publishes audit events for session and authoring activity.
// Publishing is fire and forget: a broker outage degrades auditing, never the
// request that produced the event.
package notifier

import "github.com/rs/zerolog/log"

// Event is one audit record. Subject identifies the entity the action was
// performed on; Actor the platform or candidate who performed it.
type Event struct {
	Subject string `json:"subject"`
	Action  string `json:"action"`
	ActorID uint   `json:"actor_id"`
	Details string `json:"details,omitempty"`
}

type Notifier interface {
	Publish(event Event)
}

// LogNotifier writes events to the structured log. It is the fallback when no
// broker URL is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Publish(event Event) {
	log.Info().
		Str("subject", event.Subject).
		Str("action", event.Action).
		Uint("actor_id", event.ActorID).
		Str("details", event.Details).
		Msg("Audit event")
}
