// Copyright (c) 2025 Nguyễn Thanh Phương
// This source code is licensed under the MIT License found in the LICENSE file.

// Package catlog provides a lightweight, embeddable category-based logging facility.
// This file implements the SMTP sink, which mails each rendered record to a
// fixed set of recipients. Delivery is synchronous like every other sink;
// keeping this sink behind a high-threshold logger is the caller's concern.

package catlog

import (
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig configures an SMTP sink.
type SMTPConfig struct {
	// Host is the mail server to deliver through. Required.
	Host string
	// Port overrides the client's default SMTP port when positive.
	Port int
	// Username and Password enable PLAIN authentication when Username is set.
	Username string
	Password string
	// From is the sender address. Required.
	From string
	// To lists the recipient addresses. At least one is required.
	To []string
	// Subject prefixes the subject line of every message. Defaults to
	// "log notification".
	Subject string
}

// SMTPSink mails rendered log records. The subject line carries the owning
// logger's category and the record's level; the body is the rendered line.
type SMTPSink struct {
	client  *mail.Client
	from    string
	to      []string
	subject string
}

// NewSMTPSink creates an SMTP sink from cfg. The server is not contacted
// until the first record is delivered.
func NewSMTPSink(cfg SMTPConfig) (*SMTPSink, error) {
	if cfg.Host == "" || cfg.From == "" || len(cfg.To) == 0 {
		return nil, errors.New("catlog: smtp sink requires host, from and at least one recipient")
	}
	opts := []mail.Option{}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("catlog: smtp client: %w", err)
	}
	subject := cfg.Subject
	if subject == "" {
		subject = "log notification"
	}
	return &SMTPSink{
		client:  client,
		from:    cfg.From,
		to:      append([]string(nil), cfg.To...),
		subject: subject,
	}, nil
}

// Notify mails the rendered line.
func (s *SMTPSink) Notify(l *Logger, lvl Level, line string, _ error, _ string) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return err
	}
	if err := m.To(s.to...); err != nil {
		return err
	}
	m.Subject(fmt.Sprintf("%s: %s %s", s.subject, l.Category(), lvl))
	m.SetBodyString(mail.TypeTextPlain, line)
	return s.client.DialAndSend(m)
}
