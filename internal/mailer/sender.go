package mailer

import (
	"context"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

// Message is a rendered email ready for transport.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender is the delivery transport behind the dispatcher.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Simulated() bool
}

// NewSender picks the real SMTP transport when credentials are configured and
// the log-only simulator otherwise.
func NewSender(cfg config.SMTPConfig, logg *logger.Logger) Sender {
	if cfg.HasCredentials() {
		return &smtpSender{cfg: cfg}
	}
	return &simulateSender{logg: logg}
}

type smtpSender struct {
	cfg config.SMTPConfig
}

func (s *smtpSender) Send(_ context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.User, s.cfg.FromName)
	m.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *smtpSender) Simulated() bool { return false }

// simulateSender logs instead of sending. Used when SMTP credentials are not
// configured so local setups keep working end to end.
type simulateSender struct {
	logg *logger.Logger
}

func (s *simulateSender) Send(ctx context.Context, msg Message) error {
	ctx = s.logg.WithFields(ctx, map[string]any{
		"to":      strings.Join(msg.To, ","),
		"subject": msg.Subject,
	})
	s.logg.Info(ctx, "simulated email delivery")
	return nil
}

func (s *simulateSender) Simulated() bool { return true }
