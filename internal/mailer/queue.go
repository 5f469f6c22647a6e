package mailer

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

const MailQueue = "Mail"

type MailJob struct {
	Key       string
	Recipient string
	Vars      map[string]string
}

func (j MailJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        MailQueue,
		MaxAttempts: 5,
		Backoff:     30 * time.Second,
		Timeout:     15 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

type queueMailer struct {
	queues *backlite.Client
	sender Sender
}

// New registers the mail queue on the backlite client and starts it. The
// returned Mailer only enqueues; delivery happens on the queue workers with
// the retry policy above.
func New(ctx context.Context, queues *backlite.Client, sender Sender) Mailer {
	m := &queueMailer{
		queues: queues,
		sender: sender,
	}
	m.queues.Register(backlite.NewQueue[MailJob](m.process()))
	m.queues.Start(ctx)
	log.Info().Msg("started mail queue")
	return m
}

func (m *queueMailer) Send(ctx context.Context, key, recipient string, vars map[string]string) error {
	log.Debug().Str("key", key).Str("to", recipient).Msg("enqueueing mail task")
	_, err := m.queues.Add(MailJob{
		Key:       key,
		Recipient: recipient,
		Vars:      vars,
	}).Save()
	return err
}

func (m *queueMailer) process() func(context.Context, MailJob) error {
	return func(ctx context.Context, task MailJob) error {
		err := m.sender.Deliver(ctx, task.Key, task.Recipient, task.Vars)
		if err != nil {
			log.Warn().Err(err).Str("to", task.Recipient).Msg("mail delivery failed")
		}
		return err
	}
}
