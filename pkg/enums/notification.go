package enums

import "fmt"

// NotificationKind is a category of outbound email.
type NotificationKind string

const (
	NotificationOrderCreated      NotificationKind = "order_created"
	NotificationOrderStatusChange NotificationKind = "order_status_changed"
	NotificationAdminLogin        NotificationKind = "admin_login"
	NotificationCustomerSignup    NotificationKind = "customer_signup"
	NotificationEnquiry           NotificationKind = "enquiry"
)

var validNotificationKinds = []NotificationKind{
	NotificationOrderCreated,
	NotificationOrderStatusChange,
	NotificationAdminLogin,
	NotificationCustomerSignup,
	NotificationEnquiry,
}

// IsValid checks whether the given kind matches the canonical enum.
func (n NotificationKind) IsValid() bool {
	for _, candidate := range validNotificationKinds {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationKind converts raw strings into NotificationKind.
func ParseNotificationKind(value string) (NotificationKind, error) {
	for _, candidate := range validNotificationKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification kind %q", value)
}
