package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/oa-project/office-backend-go/internal/config"
)

const (
	maxRetries = 3
	queueSize  = 128
)

// Mailer delivers mail out of band. Enqueue never blocks the request path:
// messages go onto a buffered queue and a single worker drains it with
// bounded retries.
type Mailer interface {
	Enqueue(to, subject, body string)
	Close()
}

type message struct {
	to      string
	subject string
	body    string
}

type mailerImpl struct {
	cfg   config.SMTPConfig
	queue chan message
	done  chan struct{}
}

// NewMailer starts the delivery worker. With no SMTP host configured the
// mailer logs and drops, which keeps local development working.
func NewMailer(cfg config.SMTPConfig) Mailer {
	m := &mailerImpl{
		cfg:   cfg,
		queue: make(chan message, queueSize),
		done:  make(chan struct{}),
	}
	go m.worker()
	return m
}

func (m *mailerImpl) Enqueue(to, subject, body string) {
	select {
	case m.queue <- message{to: to, subject: subject, body: body}:
	default:
		// Delivery is best effort; a full queue must not stall a request.
		slog.Error("Mail queue full, dropping message", "to", to, "subject", subject)
	}
}

func (m *mailerImpl) Close() {
	close(m.queue)
	<-m.done
}

func (m *mailerImpl) worker() {
	defer close(m.done)
	for msg := range m.queue {
		m.deliver(msg)
	}
}

func (m *mailerImpl) deliver(msg message) {
	if m.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", msg.to, "subject", msg.subject)
		return
	}

	headers := fmt.Sprintf("From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", msg.to)
	headers += fmt.Sprintf("Subject: %s\r\n", msg.subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	payload := []byte(headers + msg.body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, m.cfg.From, []string{msg.to}, payload)
		if err == nil {
			slog.Info("Email sent", "to", msg.to, "subject", msg.subject, "attempt", attempt)
			return
		}
		slog.Warn("Email send failed", "to", msg.to, "attempt", attempt, "error", err)
		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}
	slog.Error("Email delivery gave up", "to", msg.to, "subject", msg.subject)
}
