package services

import (
	"context"
	"log"
	"sync"
	"time"

	"reeyo/internal/domain/entities"
)

// AuditEvent records one committed change made from the dashboard.
type AuditEvent struct {
	Kind     entities.Kind `json:"kind"`
	EntityID string        `json:"entity_id"`
	Action   string        `json:"action"`
	Change   string        `json:"change"`
	Actor    string        `json:"actor,omitempty"`
	At       time.Time     `json:"at"`
}

type actorKey struct{}

// WithActor attaches the acting admin to ctx for audit records.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the admin attached by WithActor, if any.
func ActorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}

// NotificationService logs audit events and keeps the most recent ones for
// the dashboard's activity feed.
type NotificationService struct {
	mu     sync.Mutex
	recent []AuditEvent
	keep   int
}

// NewNotificationService keeps up to keep recent events (0 keeps none).
func NewNotificationService(keep int) *NotificationService {
	return &NotificationService{keep: keep}
}

// NotifyChange logs a committed mutation.
func (s *NotificationService) NotifyChange(ctx context.Context, kind entities.Kind, id, action, change string) {
	ev := AuditEvent{
		Kind:     kind,
		EntityID: id,
		Action:   action,
		Change:   change,
		Actor:    ActorFrom(ctx),
		At:       time.Now().UTC(),
	}
	actor := ev.Actor
	if actor == "" {
		actor = "system"
	}
	log.Printf("[AUDIT] %s %s %s: %s (by %s)", kind, id, action, change, actor)

	if s.keep <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append(s.recent, ev)
	if over := len(s.recent) - s.keep; over > 0 {
		s.recent = append([]AuditEvent(nil), s.recent[over:]...)
	}
}

// NotifyLoadFailed logs a store that could not be (re)populated.
func (s *NotificationService) NotifyLoadFailed(kind entities.Kind, err error) {
	log.Printf("[AUDIT] %s reload failed, keeping previous contents: %v", kind.Plural(), err)
}

// Recent returns the retained events, newest first.
func (s *NotificationService) Recent() []AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuditEvent, len(s.recent))
	for i, ev := range s.recent {
		out[len(s.recent)-1-i] = ev
	}
	return out
}
