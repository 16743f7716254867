package board

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "sucesso"
	NotificationError   NotificationKind = "erro"
)

const DefaultNotificationDuration = 3 * time.Second

type Notification struct {
	Kind      NotificationKind
	Message   string
	ExpiresAt time.Time
}

func (n Notification) Remaining(now time.Time) time.Duration {
	if left := n.ExpiresAt.Sub(now); left > 0 {
		return left
	}
	return 0
}

// Banner keeps a single notification. A new one replaces the current one and
// restarts its lifetime; nothing is queued.
type Banner struct {
	duration time.Duration
	current  *Notification
}

func NewBanner(duration time.Duration) *Banner {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Banner{duration: duration}
}

func (b *Banner) Show(kind NotificationKind, message string, now time.Time) {
	b.current = &Notification{Kind: kind, Message: message, ExpiresAt: now.Add(b.duration)}
}

func (b *Banner) Current(now time.Time) (Notification, bool) {
	if b.current == nil {
		return Notification{}, false
	}
	if !now.Before(b.current.ExpiresAt) {
		b.current = nil
		return Notification{}, false
	}
	return *b.current, true
}
