package mailer

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// Dialer отправка подготовленных писем (gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer канал уведомлений по электронной почте
type Mailer struct {
	dialer  Dialer
	from    string
	to      []string
	subject string
}

// NewMailer создает канал доставки через SMTP
func NewMailer(host string, port int, user, password, from string, to []string) *Mailer {
	return NewMailerWithDialer(gomail.NewDialer(host, port, user, password), from, to)
}

// NewMailerWithDialer создает канал доставки с заданным отправителем писем
func NewMailerWithDialer(dialer Dialer, from string, to []string) *Mailer {
	return &Mailer{
		dialer:  dialer,
		from:    from,
		to:      to,
		subject: "EuroAsia Studio: уведомление",
	}
}

// Name имя канала доставки (для логов и метрик)
func (m *Mailer) Name() string {
	return "mail"
}

// Send отправляет уведомление всем получателям
// Текст уведомления использует HTML-разметку Telegram, поэтому уходит как text/html
func (m *Mailer) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", m.to...)
	message.SetHeader("Subject", m.subject)
	message.SetBody("text/html", "<div style=\"font-family: Arial, sans-serif;\">"+
		strings.ReplaceAll(text, "\n", "<br>")+"</div>")

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("mailer: send to %d recipients: %w", len(m.to), err)
	}

	return nil
}
