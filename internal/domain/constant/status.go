package constant

// ReminderStatus defines the lifecycle state of a reminder.
// Dismissed and Completed are terminal; Pending and Sent still count as
// outstanding for the one-active-reminder guard.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderDismissed ReminderStatus = "dismissed"
	ReminderCompleted ReminderStatus = "completed"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s ReminderStatus) IsTerminal() bool {
	return s == ReminderDismissed || s == ReminderCompleted
}

// IsActive reports whether s counts against the one-active-reminder guard.
func (s ReminderStatus) IsActive() bool {
	return s == ReminderPending || s == ReminderSent
}

// NotificationStatus defines the lifecycle state of a notification.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationRead    NotificationStatus = "read"
)

// DueStatus is the three-state classification of a schedule.
type DueStatus string

const (
	StatusOverdue DueStatus = "overdue"
	StatusDueSoon DueStatus = "due_soon"
	StatusOK      DueStatus = "ok"
)

// CombinationPolicy selects how multiple configured interval dimensions
// combine when deciding overdue state.
type CombinationPolicy string

const (
	// PolicyAny marks the schedule overdue as soon as any configured
	// dimension passes its next-due value (OR).
	PolicyAny CombinationPolicy = "any"
	// PolicyAll requires every configured dimension to pass (AND).
	PolicyAll CombinationPolicy = "all"
)

// Valid reports whether p is one of the known policies.
func (p CombinationPolicy) Valid() bool {
	return p == PolicyAny || p == PolicyAll
}

// ReminderType annotates which dimension caused a reminder to fire.
type ReminderType string

const (
	ReminderTypeTime     ReminderType = "time"
	ReminderTypeMileage  ReminderType = "mileage"
	ReminderTypeHours    ReminderType = "hours"
	ReminderTypeCompound ReminderType = "compound"
)

// Channel identifies the delivery channel of a notification.
type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)
