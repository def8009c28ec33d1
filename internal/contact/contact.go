// Package contact handles the site's contact form: submissions are kept in
// sqlite and forwarded by mail.
package contact

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotConfigured is returned when no SMTP credentials are set.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Config holds the mail settings, read from the environment.
type Config struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	To   string `env:"TO_EMAIL"`
}

// Configured reports whether credentials and a recipient are present.
func (c Config) Configured() bool {
	return c.User != "" && c.Pass != "" && c.To != ""
}

// Message is one contact form submission.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
	Delivered bool
}

// ValidationError describes a submission the form should reject.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends messages through an SMTP relay with plain auth.
type SMTPSender struct {
	cfg      Config
	sendMail sendMailFunc
}

// NewSMTPSender returns a sender for cfg.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

// Send mails m to the configured recipient.
func (s *SMTPSender) Send(_ context.Context, m Message) error {
	if !s.cfg.Configured() {
		return ErrNotConfigured
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, composeMessage(s.cfg, m))
	if err != nil {
		return errors.Wrap(err, "send mail")
	}
	return nil
}

func composeMessage(cfg Config, m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(m.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form (%s)
`, m.Name, m.Email, m.Body, m.ID)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(m.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so user input cannot add mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Store keeps submissions in the contact_messages table.
type Store struct {
	db *sql.DB
}

// NewStore returns a store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts m.
func (s *Store) Save(ctx context.Context, m Message) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, body, created_at, delivered)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID.String(), m.Name, m.Email, m.Body, m.CreatedAt.UTC().Format(time.DateTime), boolInt(m.Delivered))
	if err != nil {
		return errors.Wrap(err, "insert contact message")
	}
	return nil
}

// MarkDelivered flags the message with id as mailed.
func (s *Store) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET delivered = 1 WHERE id = ?`, id.String())
	if err != nil {
		return errors.Wrapf(err, "mark message %s delivered", id)
	}
	return nil
}

// Recent returns up to limit messages, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, created_at, delivered
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query contact messages")
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var (
			m         Message
			id, at    string
			delivered bool
		)
		if err := rows.Scan(&id, &m.Name, &m.Email, &m.Body, &at, &delivered); err != nil {
			return nil, errors.Wrap(err, "scan contact message")
		}
		if m.ID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "parse message id %q", id)
		}
		if m.CreatedAt, err = time.Parse(time.DateTime, at); err != nil {
			return nil, errors.Wrapf(err, "parse message time %q", at)
		}
		m.Delivered = delivered
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Service validates, stores and forwards submissions.
type Service struct {
	store  *Store
	sender Sender
	now    func() time.Time
}

// NewService returns a contact service.
func NewService(store *Store, sender Sender) *Service {
	return &Service{store: store, sender: sender, now: time.Now}
}

// Submit validates the form fields, stores the message and mails it.
// The stored copy is kept even when sending fails.
func (s *Service) Submit(ctx context.Context, name, email, body string) (Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	if name == "" {
		return Message{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	if email == "" {
		return Message{}, &ValidationError{Field: "email", Reason: "is required"}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return Message{}, &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	if body == "" {
		return Message{}, &ValidationError{Field: "message", Reason: "is required"}
	}

	m := Message{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, m); err != nil {
		return Message{}, err
	}

	if err := s.sender.Send(ctx, m); err != nil {
		return m, errors.Wrapf(err, "deliver message %s", m.ID)
	}
	if err := s.store.MarkDelivered(ctx, m.ID); err != nil {
		return m, err
	}
	m.Delivered = true
	return m, nil
}
