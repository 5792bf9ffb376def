package ports

// NotificationKind classifies a user-visible notification.
type NotificationKind string

const (
	NotifyError NotificationKind = "error"
	NotifyInfo  NotificationKind = "info"
)

// Notifier is the toast sink.
type Notifier interface {
	// Notify shows message to the user. Delivery failures are not reported.
	Notify(kind NotificationKind, message string)
}
