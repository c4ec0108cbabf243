// Package mailer sends the storefront's transactional emails.
package mailer

import (
	"context"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/metrics"
)

// Payload carries everything a notification template can reference. Only the
// fields relevant to the kind need to be set.
type Payload struct {
	// To overrides the recipient list entirely when set.
	To []string

	Order  *models.Order
	Status enums.OrderStatus

	// Actor fields for login/signup/enquiry notices.
	Name    string
	Email   string
	Phone   string
	Message string
	Role    enums.Role
}

// DeliveryResult reports what happened to one dispatch. Transport failures
// live in Err; they never propagate as errors past the dispatcher.
type DeliveryResult struct {
	Kind       enums.NotificationKind
	Recipients []string
	Delivered  bool
	Simulated  bool
	Skipped    bool
	Err        error
}

// RecipientSource supplies the operational inbox list from the live site
// configuration.
type RecipientSource interface {
	NotificationRecipients(ctx context.Context) []string
}

// Dispatcher routes notification kinds to recipients and templates.
type Dispatcher struct {
	sender     Sender
	recipients RecipientSource
	baseURL    string
	metrics    *metrics.OrderMetrics
	logg       *logger.Logger
}

func NewDispatcher(sender Sender, recipients RecipientSource, baseURL string, m *metrics.OrderMetrics, logg *logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender:     sender,
		recipients: recipients,
		baseURL:    baseURL,
		metrics:    m,
		logg:       logg,
	}
}

// Dispatch renders and sends one notification. The returned result is
// informational; callers decide whether a failed delivery matters.
func (d *Dispatcher) Dispatch(ctx context.Context, kind enums.NotificationKind, payload Payload) DeliveryResult {
	result := DeliveryResult{Kind: kind}

	msg, err := buildMessage(kind, payload, d.baseURL)
	if err != nil {
		result.Err = err
		d.record(ctx, result, "render_error")
		return result
	}

	msg.To = d.resolveRecipients(ctx, kind, payload)
	if len(msg.To) == 0 {
		// a status change with no customer email is a normal case
		result.Skipped = true
		d.record(ctx, result, "skipped")
		return result
	}
	result.Recipients = msg.To

	if err := d.sender.Send(ctx, msg); err != nil {
		result.Err = err
		d.record(ctx, result, "failure")
		return result
	}

	result.Delivered = true
	result.Simulated = d.sender.Simulated()
	outcome := "success"
	if result.Simulated {
		outcome = "simulated"
	}
	d.record(ctx, result, outcome)
	return result
}

func (d *Dispatcher) resolveRecipients(ctx context.Context, kind enums.NotificationKind, payload Payload) []string {
	if len(payload.To) > 0 {
		return payload.To
	}

	switch kind {
	case enums.NotificationOrderStatusChange:
		// goes to the customer only; no email means no send
		if payload.Order != nil && payload.Order.CustomerEmail != "" {
			return []string{payload.Order.CustomerEmail}
		}
		return nil
	case enums.NotificationOrderCreated:
		recipients := d.recipients.NotificationRecipients(ctx)
		if payload.Order != nil && payload.Order.CustomerEmail != "" {
			recipients = append(append([]string{}, recipients...), payload.Order.CustomerEmail)
		}
		return recipients
	default:
		return d.recipients.NotificationRecipients(ctx)
	}
}

func (d *Dispatcher) record(ctx context.Context, result DeliveryResult, outcome string) {
	d.metrics.IncNotification(string(result.Kind), outcome)

	ctx = d.logg.WithFields(ctx, map[string]any{
		"kind":       string(result.Kind),
		"outcome":    outcome,
		"recipients": len(result.Recipients),
	})
	switch {
	case result.Err != nil:
		d.logg.Warn(d.logg.WithField(ctx, "error", result.Err.Error()), "notification not delivered")
	case result.Skipped:
		d.logg.Info(ctx, "notification skipped, no recipients")
	default:
		d.logg.Info(ctx, "notification dispatched")
	}
}
