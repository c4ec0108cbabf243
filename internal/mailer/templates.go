package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/db/models"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
)

var statusTitles = map[enums.OrderStatus]string{
	enums.OrderStatusConfirmed: "Order Confirmed!",
	enums.OrderStatusShipped:   "Your Order is on its Way!",
	enums.OrderStatusDelivered: "Order Delivered!",
	enums.OrderStatusCancelled: "Order Cancelled",
}

// statusTitle maps a persisted status to its email headline. Unknown statuses
// get the generic update headline instead of an error.
func statusTitle(status enums.OrderStatus) string {
	if title, ok := statusTitles[status]; ok {
		return title
	}
	return "Order Update"
}

const orderCreatedTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B0000;">New Order Received</h2>
  <p>Order <strong>{{.Order.ID}}</strong> was placed by {{.Order.CustomerName}}.</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr style="background: #f5f5f5;">
      <th style="padding: 8px; text-align: left;">Product</th>
      <th style="padding: 8px; text-align: right;">Qty</th>
      <th style="padding: 8px; text-align: right;">Price</th>
    </tr>
    {{range .Order.Items}}
    <tr>
      <td style="padding: 8px; border-top: 1px solid #eee;">{{.ProductID}}</td>
      <td style="padding: 8px; border-top: 1px solid #eee; text-align: right;">{{.Quantity}}</td>
      <td style="padding: 8px; border-top: 1px solid #eee; text-align: right;">&#8377;{{money .PriceAtPurchase}}</td>
    </tr>
    {{end}}
  </table>
  <p style="font-size: 18px;"><strong>Total: &#8377;{{money .Order.TotalAmount}}</strong></p>
  <p>Phone: {{.Order.CustomerPhone}}<br>Address: {{.Order.Address}}<br>Payment: {{.Order.PaymentMethod}}</p>
  <p><a href="{{.BaseURL}}/admin" style="color: #8B0000;">Open the admin portal</a></p>
</div>`

const orderStatusTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B0000;">{{.Title}}</h2>
  <p>Hi {{.Order.CustomerName}},</p>
  <p>Your order <strong>{{.Order.ID}}</strong> is now <strong>{{.Order.Status}}</strong>.</p>
  <p style="font-size: 18px;"><strong>Total: &#8377;{{money .Order.TotalAmount}}</strong></p>
  <p><a href="{{.BaseURL}}" style="color: #8B0000;">Visit Namma Elampillai</a></p>
</div>`

const adminLoginTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B0000;">Portal Login</h2>
  <p><strong>{{.Email}}</strong> signed in as <strong>{{.Role}}</strong>.</p>
</div>`

const customerSignupTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B0000;">New Customer Signup</h2>
  <p>{{.Name}} ({{.Email}}) created an account.</p>
  {{if .Phone}}<p>Phone: {{.Phone}}</p>{{end}}
</div>`

const enquiryTmpl = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #8B0000;">New Enquiry</h2>
  <p>From: {{.Name}} ({{.Email}}){{if .Phone}}, {{.Phone}}{{end}}</p>
  <blockquote style="border-left: 3px solid #8B0000; padding-left: 12px; color: #333;">{{.Message}}</blockquote>
  <p>Reply directly to this email to answer the customer.</p>
</div>`

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}

var templates = template.Must(
	template.New("order_created").Funcs(templateFuncs).Parse(orderCreatedTmpl),
)

func init() {
	template.Must(templates.New("order_status").Parse(orderStatusTmpl))
	template.Must(templates.New("admin_login").Parse(adminLoginTmpl))
	template.Must(templates.New("customer_signup").Parse(customerSignupTmpl))
	template.Must(templates.New("enquiry").Parse(enquiryTmpl))
}

type orderTemplateData struct {
	Order   *models.Order
	Title   string
	BaseURL string
}

func buildMessage(kind enums.NotificationKind, payload Payload, baseURL string) (Message, error) {
	switch kind {
	case enums.NotificationOrderCreated:
		if payload.Order == nil {
			return Message{}, fmt.Errorf("order payload is required for %s", kind)
		}
		html, err := render("order_created", orderTemplateData{Order: payload.Order, BaseURL: baseURL})
		if err != nil {
			return Message{}, err
		}
		return Message{
			Subject: fmt.Sprintf("New Order Received - %s", payload.Order.ID),
			HTML:    html,
		}, nil

	case enums.NotificationOrderStatusChange:
		if payload.Order == nil {
			return Message{}, fmt.Errorf("order payload is required for %s", kind)
		}
		title := statusTitle(payload.Order.Status)
		html, err := render("order_status", orderTemplateData{Order: payload.Order, Title: title, BaseURL: baseURL})
		if err != nil {
			return Message{}, err
		}
		return Message{
			Subject: fmt.Sprintf("%s - Order %s", title, payload.Order.ID),
			HTML:    html,
		}, nil

	case enums.NotificationAdminLogin:
		html, err := render("admin_login", payload)
		if err != nil {
			return Message{}, err
		}
		return Message{Subject: "Portal Login Alert", HTML: html}, nil

	case enums.NotificationCustomerSignup:
		html, err := render("customer_signup", payload)
		if err != nil {
			return Message{}, err
		}
		return Message{Subject: "New Customer Signup", HTML: html}, nil

	case enums.NotificationEnquiry:
		html, err := render("enquiry", payload)
		if err != nil {
			return Message{}, err
		}
		return Message{
			Subject: fmt.Sprintf("New Enquiry from %s", payload.Name),
			HTML:    html,
			ReplyTo: payload.Email,
		}, nil
	}
	return Message{}, fmt.Errorf("unknown notification kind %q", kind)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", name, err)
	}
	return buf.String(), nil
}
