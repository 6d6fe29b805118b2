// Package notify реализует отправку писем клиенту через SMTP.
// Все отправки в процессе бронирования являются best-effort:
// ошибка доставки логируется вызывающей стороной и не откатывает данные.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/lepikeman/qrenoo-booking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет транзакционные письма через SMTP без аутентификации
// (совместимо с Mailpit в разработке и внутренним релеем в production)
type Mailer struct {
	addr string
	from string
	log  Logger
}

// NewMailer создает новый экземпляр почтового отправителя
func NewMailer(host string, port int, from string, log Logger) *Mailer {
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@qrenoo.local"
	}
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", strings.TrimSpace(host), port),
		from: from,
		log:  log,
	}
}

// SendConfirmationCode отправляет одноразовый код подтверждения бронирования
func (m *Mailer) SendConfirmationCode(ctx context.Context, to string, code string, appt *domain.Appointment) error {
	subject := "Votre code de confirmation Qrenoo"
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre demande de rendez-vous du %s à %s a bien été reçue.\n\n"+
			"Votre code de confirmation : %s\n\n"+
			"Ce code est valable 15 minutes. Saisissez-le pour confirmer votre rendez-vous.\n\n"+
			"À bientôt,\nL'équipe Qrenoo",
		appt.ClientName,
		appt.Date.Format(domain.DateFormat),
		appt.StartTime.String(),
		code,
	)
	return m.send(ctx, to, subject, body)
}

// SendAppointmentConfirmed отправляет подтверждение записи
func (m *Mailer) SendAppointmentConfirmed(ctx context.Context, to string, appt *domain.Appointment) error {
	subject := "Rendez-vous confirmé"
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre rendez-vous du %s à %s est confirmé.\n\n"+
			"À bientôt,\nL'équipe Qrenoo",
		appt.ClientName,
		appt.Date.Format(domain.DateFormat),
		appt.StartTime.String(),
	)
	return m.send(ctx, to, subject, body)
}

// SendAppointmentCancelled отправляет уведомление об отмене записи
func (m *Mailer) SendAppointmentCancelled(ctx context.Context, to string, appt *domain.Appointment) error {
	subject := "Rendez-vous annulé"
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre rendez-vous du %s à %s a été annulé.\n\n"+
			"Vous pouvez réserver un nouveau créneau à tout moment.\n\n"+
			"L'équipe Qrenoo",
		appt.ClientName,
		appt.Date.Format(domain.DateFormat),
		appt.StartTime.String(),
	)
	return m.send(ctx, to, subject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("notify: send to %s: %w", to, err)
	}

	m.log.Info("notify: email %q sent to %s", subject, to)
	return nil
}

// buildMessage собирает минимальное RFC 5322 сообщение
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
