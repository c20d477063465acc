package entities

import "time"

// NotificationKind identifies the message template a consumer should render.
type NotificationKind string

const (
	NotificationGiftInvitation     NotificationKind = "gift.invitation"
	NotificationGiftCompleted      NotificationKind = "gift.completed"
	NotificationGiftExpired        NotificationKind = "gift.expired"
	NotificationOrderStatusChanged NotificationKind = "order.status_changed"
)

// Notification is a fire-and-forget message for the notification gateway.
// It is only emitted after the state change it describes has been stored.
type Notification struct {
	Kind           NotificationKind  `json:"kind"`
	ContributionID string            `json:"contribution_id"`
	OrderID        string            `json:"order_id,omitempty"`
	Recipient      string            `json:"recipient"`
	Subject        string            `json:"subject"`
	Data           map[string]string `json:"data,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
