package ports

import "context"

// Notification kinds delivered to operators.
const (
	NotifyContactMessage     = "contact_message"
	NotifyVolunteerApplied   = "volunteer_application"
	NotifyOrphanedCredential = "orphaned_credential"
)

// NotificationInput is the DTO handed to the dispatcher. Reference identifies
// the originating row, Email the subject's address (also the sharding key).
type NotificationInput struct {
	Kind      string
	Reference string
	Email     string
	Summary   string
}

// NotificationSink delivers a single operator notification.
type NotificationSink interface {
	Deliver(ctx context.Context, n NotificationInput) error
}

// Notifier is the interface services use to enqueue notifications without
// waiting for delivery.
type Notifier interface {
	Enqueue(n NotificationInput)
}
