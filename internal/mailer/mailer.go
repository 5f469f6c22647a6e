// Package mailer delivers transactional mail. Sends go through a persistent
// backlite queue so a slow or down mail server never blocks, and never fails,
// the request that triggered the message.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"sort"
)

const (
	// KeyRegistrationConfirmation is the template for the post-signup mail.
	KeyRegistrationConfirmation = "registration_confirmation"
)

type Mailer interface {
	// Send delivers (or schedules delivery of) the keyed template to the
	// recipient with the given substitutions.
	Send(ctx context.Context, key, recipient string, vars map[string]string) error
}

// Sender performs one concrete delivery attempt. The queue retries it.
type Sender interface {
	Deliver(ctx context.Context, key, recipient string, vars map[string]string) error
}

// SmtpSender sends through a plain SMTP relay.
type SmtpSender struct {
	Addr string
	From string
}

func (s *SmtpSender) Deliver(ctx context.Context, key, recipient string, vars map[string]string) error {
	subject, body, err := compose(key, vars)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.From, recipient, subject, body)
	return smtp.SendMail(s.Addr, nil, s.From, []string{recipient}, []byte(msg))
}

func compose(key string, vars map[string]string) (subject, body string, err error) {
	switch key {
	case KeyRegistrationConfirmation:
		return "Registration confirmation", varsLine(vars), nil
	}
	return "", "", fmt.Errorf("unknown mail template %q", key)
}

// varsLine renders the substitutions as "Key: value" pairs in a stable order,
// matching the flat confirmation body the registration flow always sent.
func varsLine(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s string
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += k + ": " + vars[k]
	}
	return s
}
