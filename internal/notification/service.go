package notification

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"time"
)

const (
	maxAttempts   = 3
	retryDelay    = time.Second
	queueCapacity = 256
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// Sender is the underlying transport. Delivery errors are retried by
// the dispatcher, then logged and audited, never propagated upstream.
type Sender interface {
	Send(to, subject, body string) error
}

// AuditRepository records the outcome of every delivery attempt chain.
type AuditRepository interface {
	RecordAudit(ctx context.Context, audit *Audit) error
}

// Dispatcher consumes an in-process outbox queue. Lifecycle services
// enqueue after their own writes succeed, keeping the entity write and
// the notification decoupled.
type Dispatcher struct {
	sender Sender
	audits AuditRepository
	queue  chan Message
	wg     sync.WaitGroup
	sleep  func(time.Duration)
	now    func() time.Time
}

func NewDispatcher(sender Sender, audits AuditRepository) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		audits: audits,
		queue:  make(chan Message, queueCapacity),
		sleep:  time.Sleep,
		now:    time.Now,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Enqueue renders and queues a notification. A full queue drops the
// message with a log line rather than blocking the caller.
func (d *Dispatcher) Enqueue(kind Kind, recipient string, params map[string]string) {
	subject, body := render(kind, params)
	msg := Message{
		Kind:      kind,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Reference: reference(kind, params),
	}

	select {
	case d.queue <- msg:
	default:
		slog.Error("notification queue full, dropping message",
			"kind", kind, "recipient", recipient)
	}
}

// Close stops accepting messages and drains the queue.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	if !emailPattern.MatchString(msg.Recipient) {
		slog.Error("invalid notification recipient", "recipient", msg.Recipient, "kind", msg.Kind)
		d.recordAudit(msg, false)

		return
	}

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = d.sender.Send(msg.Recipient, msg.Subject, msg.Body)
		if lastErr == nil {
			slog.Info("notification sent",
				"kind", msg.Kind, "recipient", msg.Recipient)
			d.recordAudit(msg, true)

			return
		}

		slog.Warn("notification send attempt failed",
			"attempt", attempt, "kind", msg.Kind, "recipient", msg.Recipient, "error", lastErr)

		if attempt < maxAttempts {
			d.sleep(retryDelay)
		}
	}

	slog.Error("all notification send attempts failed",
		"kind", msg.Kind, "recipient", msg.Recipient, "error", lastErr)
	d.recordAudit(msg, false)
}

func (d *Dispatcher) recordAudit(msg Message, success bool) {
	if d.audits == nil {
		return
	}

	audit := &Audit{
		Kind:      msg.Kind,
		Recipient: msg.Recipient,
		Reference: msg.Reference,
		Success:   success,
		SentAt:    d.now(),
	}

	if err := d.audits.RecordAudit(context.Background(), audit); err != nil {
		slog.Error("failed to record notification audit", "error", err)
	}
}
