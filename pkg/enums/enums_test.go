package enums

import "testing"

func TestOrderStatusLifecycle(t *testing.T) {
	if !OrderStatusPending.IsValid() {
		t.Fatal("pending should be valid")
	}
	if OrderStatus("packed").IsValid() {
		t.Fatal("unknown status should not be valid")
	}
	if OrderStatusShipped.IsTerminal() {
		t.Fatal("shipped is not terminal")
	}
	if !OrderStatusDelivered.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatal("delivered and cancelled are terminal")
	}

	next := OrderStatusConfirmed.NextStatuses()
	if len(next) != 2 || next[0] != OrderStatusShipped || next[1] != OrderStatusCancelled {
		t.Fatalf("unexpected transitions from confirmed: %v", next)
	}
	if OrderStatusDelivered.NextStatuses() != nil {
		t.Fatal("terminal statuses have no transitions")
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("shipped")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if status != OrderStatusShipped {
		t.Fatalf("got %q", status)
	}
	if _, err := ParseOrderStatus("SHIPPED"); err == nil {
		t.Fatal("statuses are lowercase on the wire")
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("partner")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if role != RolePartner {
		t.Fatalf("got %q", role)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatal("unknown roles must be rejected")
	}
}

func TestParseNotificationKind(t *testing.T) {
	kind, err := ParseNotificationKind("enquiry")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if kind != NotificationEnquiry {
		t.Fatalf("got %q", kind)
	}
	if _, err := ParseNotificationKind("sms"); err == nil {
		t.Fatal("unknown kinds must be rejected")
	}
}
